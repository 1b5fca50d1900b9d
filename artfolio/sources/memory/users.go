package memory

import (
	"context"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
)

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := opError(ctx, "GetUser"); err != nil {
		return nil, err
	}
	defer s.guard()()
	u, ok := s.d.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := opError(ctx, "GetUserByUsername"); err != nil {
		return nil, err
	}
	defer s.guard()()
	for _, u := range s.d.users {
		if u.Username != nil && *u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) usernameTaken(username, exceptID string) bool {
	for id, u := range s.d.users {
		if id != exceptID && u.Username != nil && *u.Username == username {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := opError(ctx, "CreateUser"); err != nil {
		return nil, err
	}
	defer s.guard()()
	u := *user
	if u.ID == "" {
		u.ID = newID()
	}
	if _, ok := s.d.users[u.ID]; ok {
		return nil, store.Conflict("CreateUser", "user already exists")
	}
	if u.Username != nil && s.usernameTaken(*u.Username, "") {
		return nil, store.Conflict("CreateUser", "username already taken")
	}
	u.CreatedAt = s.stamp()
	s.d.users[u.ID] = u
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	if err := opError(ctx, "UpdateUser"); err != nil {
		return nil, err
	}
	if upd.Empty() {
		return nil, store.Invalid("UpdateUser", "no fields to update")
	}
	defer s.guard()()
	u, ok := s.d.users[id]
	if !ok {
		return nil, nil
	}
	if upd.Username != nil && *upd.Username != "" && s.usernameTaken(*upd.Username, id) {
		return nil, store.Conflict("UpdateUser", "username already taken")
	}
	if upd.FullName != nil {
		u.FullName = nullable(upd.FullName)
	}
	if upd.Username != nil {
		u.Username = nullable(upd.Username)
	}
	if upd.ProfileImageURL != nil {
		u.ProfileImageURL = nullable(upd.ProfileImageURL)
	}
	s.d.users[id] = u
	return &u, nil
}
