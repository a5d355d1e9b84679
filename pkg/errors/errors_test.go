package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/errors"
)

func TestAppError_Predicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", errors.NotFound("x"), errors.IsNotFound},
		{"bad request", errors.BadRequest("x"), errors.IsBadRequest},
		{"conflict", errors.Conflict("x"), errors.IsConflict},
		{"unauthorized", errors.Unauthorized("x"), errors.IsUnauthorized},
		{"forbidden", errors.Forbidden("x"), errors.IsForbidden},
		{"internal", errors.Internal("x"), errors.IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("wrapped: %w", tt.err)))
			assert.False(t, tt.check(stderrors.New("plain")))
		})
	}
}

func TestAppError_SentinelIdentity(t *testing.T) {
	sentinel := errors.Conflict("already liked")
	other := errors.Conflict("already liked")

	wrapped := fmt.Errorf("create like: %w", sentinel)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, other)
	assert.Equal(t, errors.ErrorTypeConflict, errors.TypeOf(wrapped))
	assert.Equal(t, errors.ErrorTypeInternal, errors.TypeOf(stderrors.New("boom")))
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := errors.Wrap(errors.ErrorTypeInternal, "query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL: query failed: connection reset", err.Error())
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"pg other violation", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite message", stderrors.New("UNIQUE constraint failed: likes.user_id, likes.media_id"), true},
		{"postgres message", stderrors.New(`ERROR: duplicate key value violates unique constraint "idx"`), true},
		{"unrelated", stderrors.New("record not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.IsDuplicateError(tt.err))
		})
	}
}
