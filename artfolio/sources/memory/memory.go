// Package memory is an in-process Store used for demos and tests. All state
// lives in maps guarded by one mutex.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
)

const (
	DemoUserID   = "user-123"
	DemoFullName = "Test User"
	DemoUsername = "testuser"
)

type data struct {
	users      map[string]models.User
	portfolios map[string]models.Portfolio
	images     map[string]models.Image
	events     map[string]models.Event
	social     map[string]models.SocialConnection
}

func newData() *data {
	return &data{
		users:      map[string]models.User{},
		portfolios: map[string]models.Portfolio{},
		images:     map[string]models.Image{},
		events:     map[string]models.Event{},
		social:     map[string]models.SocialConnection{},
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.portfolios {
		c.portfolios[k] = v
	}
	for k, v := range d.images {
		c.images[k] = v
	}
	for k, v := range d.events {
		c.events[k] = v
	}
	for k, v := range d.social {
		c.social[k] = v
	}
	return c
}

var _ store.Store = (*Store)(nil)

type Store struct {
	mu   *sync.Mutex
	d    *data
	inTx bool
	now  func() time.Time
	seq  int64
}

// New returns an empty store.
func New() *Store {
	return &Store{mu: &sync.Mutex{}, d: newData(), now: time.Now}
}

// NewSeeded returns a store holding the demo user.
func NewSeeded() *Store {
	s := New()
	name, username := DemoFullName, DemoUsername
	s.d.users[DemoUserID] = models.User{
		ID:        DemoUserID,
		FullName:  &name,
		Username:  &username,
		Email:     "test@example.com",
		CreatedAt: s.now(),
	}
	return s
}

// guard locks the store unless the caller already holds the lock through WithTx.
func (s *Store) guard() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// stamp returns a strictly increasing timestamp so ordering by created_at is
// stable even when the clock does not advance between calls.
func (s *Store) stamp() time.Time {
	s.seq++
	return s.now().Add(time.Duration(s.seq))
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return store.E(store.KindUnavailable, "WithTx", err)
	}
	snapshot := s.d.clone()
	tx := &Store{mu: s.mu, d: s.d, inTx: true, now: s.now, seq: s.seq}
	err := fn(tx)
	s.seq = tx.seq
	if err != nil {
		s.d = snapshot
	}
	return err
}

func (s *Store) Close() error {
	return nil
}

func opError(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return store.E(store.KindUnavailable, op, err)
	}
	return nil
}

func newID() string {
	return models.NewID()
}

func sortByCreated[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).Before(created(items[j]))
	})
}

// nullable turns "" into nil so clearing a column reads back as null.
func nullable(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	v := *p
	return &v
}
