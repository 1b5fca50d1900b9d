package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"tagged", Invalid("op", "bad"), KindInvalid},
		{"wrapped tagged", fmt.Errorf("outer: %w", Conflict("op", "dup")), KindConflict},
		{"no rows", sql.ErrNoRows, KindNotFound},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), KindUnavailable},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindConflict},
		{"not null violation", &pgconn.PgError{Code: "23502"}, KindInvalid},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, KindInternal},
		{"plain", errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestWrapKeepsExistingKind(t *testing.T) {
	orig := NotFound("GetUser", "user not found")
	wrapped := Wrap("UpdateUser", orig)
	assert.Same(t, orig, wrapped)
	assert.Nil(t, Wrap("op", nil))

	err := Wrap("CreatePortfolio", &pgconn.PgError{Code: "23505"})
	var se *Error
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "CreatePortfolio", se.Op)
	assert.Equal(t, KindConflict, se.Kind)
}
