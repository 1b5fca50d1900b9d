package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddWebsiteToPortfolios, downAddWebsiteToPortfolios)
}

func upAddWebsiteToPortfolios(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `ALTER TABLE portfolios ADD COLUMN website VARCHAR(1024);`)
}

func downAddWebsiteToPortfolios(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `ALTER TABLE portfolios DROP COLUMN IF EXISTS website;`)
}
