package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddSourceToImages, downAddSourceToImages)
}

func upAddSourceToImages(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `
	ALTER TABLE images ADD COLUMN source VARCHAR(32) NOT NULL DEFAULT 'upload';
	CREATE INDEX idx_images_user_source ON images (user_id, source);
	`)
}

func downAddSourceToImages(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `
	DROP INDEX IF EXISTS idx_images_user_source;
	ALTER TABLE images DROP COLUMN IF EXISTS source;
	`)
}
