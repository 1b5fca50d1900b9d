package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateImagesTable, downCreateImagesTable)
}

// Images reference portfolios and users loosely; both columns are nullable
// and no foreign keys are declared.
func upCreateImagesTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `
	CREATE TABLE images (
	  id VARCHAR(64) PRIMARY KEY,
	  image_url VARCHAR(1024) NOT NULL,
	  portfolio_id VARCHAR(64),
	  user_id VARCHAR(64),
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	CREATE INDEX idx_images_portfolio_id ON images (portfolio_id);
	CREATE INDEX idx_images_user_id ON images (user_id);
	`)
}

func downCreateImagesTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `DROP TABLE IF EXISTS images;`)
}
