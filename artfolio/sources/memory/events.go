package memory

import (
	"context"
	"time"

	"artfolio/artfolio/sources/models"
)

func (s *Store) ListEvents(ctx context.Context, userID string) ([]models.Event, error) {
	if err := opError(ctx, "ListEvents"); err != nil {
		return nil, err
	}
	defer s.guard()()
	out := []models.Event{}
	for _, ev := range s.d.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	sortByCreated(out, func(e models.Event) time.Time { return e.CreatedAt })
	return out, nil
}

func (s *Store) CreateEvent(ctx context.Context, ev *models.Event) (*models.Event, error) {
	if err := opError(ctx, "CreateEvent"); err != nil {
		return nil, err
	}
	defer s.guard()()
	e := *ev
	e.ID = newID()
	e.CreatedAt = s.stamp()
	s.d.events[e.ID] = e
	return &e, nil
}

func (s *Store) DeleteEvent(ctx context.Context, userID, id string) error {
	if err := opError(ctx, "DeleteEvent"); err != nil {
		return err
	}
	defer s.guard()()
	if ev, ok := s.d.events[id]; ok && ev.UserID == userID {
		delete(s.d.events, id)
	}
	return nil
}
