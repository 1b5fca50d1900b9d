package sqlstore

import (
	"context"
	"time"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"

	"github.com/jmoiron/sqlx"
)

const socialColumns = `user_id, platform, username, access_token, connected_at, last_fetched`

func (s *Store) ListSocialConnections(ctx context.Context, userID string) ([]models.SocialConnection, error) {
	conns := []models.SocialConnection{}
	query := `SELECT ` + socialColumns + ` FROM social_connections WHERE user_id = $1 ORDER BY connected_at ASC`
	if err := sqlx.SelectContext(ctx, s.q, &conns, query, userID); err != nil {
		return nil, store.Wrap("ListSocialConnections", err)
	}
	return conns, nil
}

func (s *Store) GetSocialConnection(ctx context.Context, userID, platform string) (*models.SocialConnection, error) {
	var c models.SocialConnection
	query := `SELECT ` + socialColumns + ` FROM social_connections WHERE user_id = $1 AND platform = $2`
	ok, err := s.getOne(ctx, &c, query, userID, platform)
	if err != nil || !ok {
		return nil, store.Wrap("GetSocialConnection", err)
	}
	return &c, nil
}

func (s *Store) UpsertSocialConnection(ctx context.Context, conn *models.SocialConnection) (*models.SocialConnection, error) {
	connectedAt := conn.ConnectedAt
	if connectedAt.IsZero() {
		connectedAt = time.Now()
	}
	query := `
		INSERT INTO social_connections (user_id, platform, username, access_token, connected_at, last_fetched)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, platform) DO UPDATE SET
			username = EXCLUDED.username,
			access_token = EXCLUDED.access_token,
			connected_at = EXCLUDED.connected_at,
			last_fetched = EXCLUDED.last_fetched
		RETURNING ` + socialColumns
	var c models.SocialConnection
	_, err := s.getOne(ctx, &c, query, conn.UserID, conn.Platform, conn.Username, conn.AccessToken, connectedAt, conn.LastFetched)
	if err != nil {
		return nil, store.Wrap("UpsertSocialConnection", err)
	}
	return &c, nil
}

func (s *Store) TouchSocialConnection(ctx context.Context, userID, platform string) error {
	_, err := s.q.ExecContext(ctx, `UPDATE social_connections SET last_fetched = now() WHERE user_id = $1 AND platform = $2`, userID, platform)
	return store.Wrap("TouchSocialConnection", err)
}
