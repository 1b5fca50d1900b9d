package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePortfoliosTable, downCreatePortfoliosTable)
}

func upCreatePortfoliosTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `
	CREATE TABLE portfolios (
	  id VARCHAR(64) PRIMARY KEY,
	  user_id VARCHAR(64) NOT NULL,
	  title VARCHAR(255) NOT NULL,
	  description TEXT,
	  slug VARCHAR(255) UNIQUE,
	  is_public BOOLEAN NOT NULL DEFAULT true,
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	CREATE INDEX idx_portfolios_user_id ON portfolios (user_id, created_at);
	`)
}

func downCreatePortfoliosTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `DROP TABLE IF EXISTS portfolios;`)
}
