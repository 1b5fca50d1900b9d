package controllers

import (
	"context"
	"errors"
	"os"
	"testing"

	"artfolio/artfolio/sources/memory"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/utils/logging"
)

func TestMain(m *testing.M) {
	logging.InitNop()
	os.Exit(m.Run())
}

// flakyStore fails selected calls to simulate storage errors.
type flakyStore struct {
	*memory.Store
	imageCalls     int
	failImageCall  int
	portfolioCalls int
	conflictOnce   bool
}

func (f *flakyStore) CreateImage(ctx context.Context, in models.ImageInput) (*models.Image, error) {
	f.imageCalls++
	if f.imageCalls == f.failImageCall {
		return nil, store.E(store.KindUnavailable, "CreateImage", errors.New("connection reset"))
	}
	return f.Store.CreateImage(ctx, in)
}

func (f *flakyStore) CreatePortfolio(ctx context.Context, in models.PortfolioInput) (*models.Portfolio, error) {
	f.portfolioCalls++
	if f.conflictOnce && f.portfolioCalls == 1 {
		return nil, store.Conflict("CreatePortfolio", "slug already in use")
	}
	return f.Store.CreatePortfolio(ctx, in)
}

// WithTx wraps the transactional store too so injected failures apply inside it.
func (f *flakyStore) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.WithTx(ctx, func(tx store.Store) error {
		inner := *f
		inner.Store = tx.(*memory.Store)
		err := fn(&inner)
		f.imageCalls, f.portfolioCalls = inner.imageCalls, inner.portfolioCalls
		return err
	})
}

func ptr[T any](v T) *T { return &v }
