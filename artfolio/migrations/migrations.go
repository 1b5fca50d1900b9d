// Package migrations holds the goose schema for the sql store backend.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// goose discovers Go migrations by file name, so the files ship with the binary.
//
//go:embed *.go
var files embed.FS

func setup() error {
	goose.SetBaseFS(files)
	return goose.SetDialect("postgres")
}

func Up(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func Down(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, ".")
}

func Status(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, ".")
}

// Run dispatches a CLI command: up, down or status.
func Run(ctx context.Context, db *sql.DB, command string) error {
	switch command {
	case "", "up":
		return Up(ctx, db)
	case "down":
		return Down(ctx, db)
	case "status":
		return Status(ctx, db)
	}
	return fmt.Errorf("unknown migrate command %q", command)
}

func exec(ctx context.Context, tx *sql.Tx, query string) error {
	_, err := tx.ExecContext(ctx, query)
	return err
}
