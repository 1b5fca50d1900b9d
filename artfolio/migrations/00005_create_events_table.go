package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateEventsTable, downCreateEventsTable)
}

func upCreateEventsTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `
	CREATE TABLE events (
	  id VARCHAR(64) PRIMARY KEY,
	  user_id VARCHAR(64) NOT NULL,
	  title VARCHAR(255) NOT NULL,
	  date DATE NOT NULL,
	  location VARCHAR(255) NOT NULL,
	  description TEXT,
	  type VARCHAR(32) NOT NULL DEFAULT 'performance'
	    CHECK (type IN ('performance', 'workshop', 'exhibition', 'other')),
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	CREATE INDEX idx_events_user_id ON events (user_id);
	`)
}

func downCreateEventsTable(ctx context.Context, tx *sql.Tx) error {
	return exec(ctx, tx, `DROP TABLE IF EXISTS events;`)
}
