package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSocialConnectionsTable, downCreateSocialConnectionsTable)
}

func upCreateSocialConnectionsTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `
	CREATE TABLE social_connections (
	  user_id VARCHAR(64) NOT NULL,
	  platform VARCHAR(32) NOT NULL,
	  username VARCHAR(255) NOT NULL,
	  access_token VARCHAR(255) NOT NULL,
	  connected_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  last_fetched TIMESTAMP WITH TIME ZONE,
	  PRIMARY KEY (user_id, platform)
	);
	`)
}

func downCreateSocialConnectionsTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `DROP TABLE IF EXISTS social_connections;`)
}
