package sqlstore

import (
	"context"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"

	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, user_id, title, date, location, description, type, created_at`

func (s *Store) ListEvents(ctx context.Context, userID string) ([]models.Event, error) {
	events := []models.Event{}
	query := `SELECT ` + eventColumns + ` FROM events WHERE user_id = $1 ORDER BY created_at ASC`
	if err := sqlx.SelectContext(ctx, s.q, &events, query, userID); err != nil {
		return nil, store.Wrap("ListEvents", err)
	}
	return events, nil
}

func (s *Store) CreateEvent(ctx context.Context, ev *models.Event) (*models.Event, error) {
	query := `INSERT INTO events (id, user_id, title, date, location, description, type) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING ` + eventColumns
	var e models.Event
	_, err := s.getOne(ctx, &e, query, models.NewID(), ev.UserID, ev.Title, ev.Date, ev.Location, nullString(ev.Description), ev.Type)
	if err != nil {
		return nil, store.Wrap("CreateEvent", err)
	}
	return &e, nil
}

func (s *Store) DeleteEvent(ctx context.Context, userID, id string) error {
	_, err := s.q.ExecContext(ctx, `DELETE FROM events WHERE id = $1 AND user_id = $2`, id, userID)
	return store.Wrap("DeleteEvent", err)
}
