// Package backend opens the store implementation named in the config.
package backend

import (
	"context"
	"fmt"

	"artfolio/artfolio/config"
	"artfolio/artfolio/migrations"
	"artfolio/artfolio/sources/memory"
	"artfolio/artfolio/sources/psql"
	"artfolio/artfolio/sources/sqlstore"
	"artfolio/artfolio/sources/store"
)

// Open connects the backend named in cfg. The sql backend is migrated to
// the latest version before use.
func Open(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return memory.NewSeeded(), nil
	case config.BackendGorm:
		db, err := psql.NewDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return psql.NewStore(db), nil
	case config.BackendSQL:
		s, err := sqlstore.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(ctx, s.DB().DB); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
