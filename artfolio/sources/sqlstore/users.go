package sqlstore

import (
	"context"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
)

const userColumns = `id, full_name, username, email, profile_image_url, created_at`

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	ok, err := s.getOne(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil || !ok {
		return nil, store.Wrap("GetUser", err)
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	ok, err := s.getOne(ctx, &u, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if err != nil || !ok {
		return nil, store.Wrap("GetUserByUsername", err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	id := user.ID
	if id == "" {
		id = models.NewID()
	}
	query := `INSERT INTO users (id, full_name, username, email, profile_image_url) VALUES ($1, $2, $3, $4, $5) RETURNING ` + userColumns
	var u models.User
	if _, err := s.getOne(ctx, &u, query, id, user.FullName, user.Username, user.Email, user.ProfileImageURL); err != nil {
		return nil, store.Wrap("CreateUser", err)
	}
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	var b setBuilder
	if upd.FullName != nil {
		b.addNullable("full_name", upd.FullName)
	}
	if upd.Username != nil {
		b.addNullable("username", upd.Username)
	}
	if upd.ProfileImageURL != nil {
		b.addNullable("profile_image_url", upd.ProfileImageURL)
	}
	if b.empty() {
		return nil, store.Invalid("UpdateUser", "no fields to update")
	}
	query, args := b.build("users", userColumns, id)
	var u models.User
	ok, err := s.getOne(ctx, &u, query, args...)
	if err != nil || !ok {
		return nil, store.Wrap("UpdateUser", err)
	}
	return &u, nil
}
