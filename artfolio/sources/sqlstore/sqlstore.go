// Package sqlstore implements store.Store with hand-written SQL over sqlx and
// the pgx stdlib driver. The schema comes from the goose migrations.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"artfolio/artfolio/config"
	"artfolio/artfolio/sources/store"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	db *sqlx.DB
	// q is the DB, or the open transaction inside WithTx.
	q sqlx.ExtContext
}

func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, store.Wrap("Open", err)
	}
	return New(db), nil
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db, q: db}
}

// DB exposes the pool for migrations.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.Wrap("WithTx", err)
	}
	if err := fn(&Store{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return store.Wrap("WithTx", tx.Commit())
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// getOne runs a single-row query. No row is (false, nil).
func (s *Store) getOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, s.q, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// setBuilder collects "col = $n" clauses for sparse updates.
type setBuilder struct {
	clauses []string
	args    []any
}

func (b *setBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

// addNullable writes NULL for "".
func (b *setBuilder) addNullable(col string, v *string) {
	if *v == "" {
		b.add(col, nil)
		return
	}
	b.add(col, *v)
}

func (b *setBuilder) raw(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *setBuilder) empty() bool {
	return len(b.clauses) == 0
}

// build returns "UPDATE table SET ... WHERE id = $n RETURNING columns".
func (b *setBuilder) build(table, columns string, id string) (string, []any) {
	args := append(b.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(b.clauses, ", "), len(args), columns)
	return query, args
}

func nullString(p *string) any {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}
