package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindConflict    Kind = "conflict"
	KindInvalid     Kind = "invalid"
	KindUnavailable Kind = "unavailable"
	KindInternal    Kind = "internal"
)

// Error tags a failure with a Kind so callers can tell a missing row from a
// unique violation or a dead connection.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Invalid(op, msg string) error {
	return &Error{Kind: KindInvalid, Op: op, Err: errors.New(msg)}
}

func NotFound(op, msg string) error {
	return &Error{Kind: KindNotFound, Op: op, Err: errors.New(msg)}
}

func Conflict(op, msg string) error {
	return &Error{Kind: KindConflict, Op: op, Err: errors.New(msg)}
}

// KindOf reports the kind of err. Untagged errors are classified from their
// chain; anything unrecognised is internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return classify(err)
}

// Wrap tags err with op, keeping an existing kind. Nil stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) Kind {
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindUnavailable
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindConflict
		case "23502", "23503", "23514", "22P02":
			return KindInvalid
		}
		return KindInternal
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return KindUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindUnavailable
	}
	if errors.Is(err, sql.ErrConnDone) {
		return KindUnavailable
	}
	return KindInternal
}
