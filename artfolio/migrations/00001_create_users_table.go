package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsersTable, downCreateUsersTable)
}

func upCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `
	CREATE TABLE users (
	  id VARCHAR(64) PRIMARY KEY,
	  full_name VARCHAR(255),
	  username VARCHAR(255) UNIQUE,
	  email VARCHAR(255) NOT NULL DEFAULT '',
	  profile_image_url VARCHAR(1024),
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`)
}

func downCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `DROP TABLE IF EXISTS users;`)
}
