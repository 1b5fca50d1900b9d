package memory

import (
	"context"
	"time"

	"artfolio/artfolio/sources/models"
)

func socialKey(userID, platform string) string {
	return userID + "/" + platform
}

func (s *Store) ListSocialConnections(ctx context.Context, userID string) ([]models.SocialConnection, error) {
	if err := opError(ctx, "ListSocialConnections"); err != nil {
		return nil, err
	}
	defer s.guard()()
	out := []models.SocialConnection{}
	for _, c := range s.d.social {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sortByCreated(out, func(c models.SocialConnection) time.Time { return c.ConnectedAt })
	return out, nil
}

func (s *Store) GetSocialConnection(ctx context.Context, userID, platform string) (*models.SocialConnection, error) {
	if err := opError(ctx, "GetSocialConnection"); err != nil {
		return nil, err
	}
	defer s.guard()()
	c, ok := s.d.social[socialKey(userID, platform)]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) UpsertSocialConnection(ctx context.Context, conn *models.SocialConnection) (*models.SocialConnection, error) {
	if err := opError(ctx, "UpsertSocialConnection"); err != nil {
		return nil, err
	}
	defer s.guard()()
	c := *conn
	if c.ConnectedAt.IsZero() {
		c.ConnectedAt = s.stamp()
	}
	s.d.social[socialKey(c.UserID, c.Platform)] = c
	return &c, nil
}

func (s *Store) TouchSocialConnection(ctx context.Context, userID, platform string) error {
	if err := opError(ctx, "TouchSocialConnection"); err != nil {
		return err
	}
	defer s.guard()()
	key := socialKey(userID, platform)
	c, ok := s.d.social[key]
	if !ok {
		return nil
	}
	now := s.now()
	c.LastFetched = &now
	s.d.social[key] = c
	return nil
}
