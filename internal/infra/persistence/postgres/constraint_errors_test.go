package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"pg unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, true},
		{"wrapped pg unique violation", errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), true},
		{"pg not null violation", &pgconn.PgError{Code: "23502"}, false},
		{"connection failure", errors.New("dial tcp: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "username" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection reset by peer")))
}

func TestIsStringTooLong(t *testing.T) {
	assert.True(t, isStringTooLong(&pgconn.PgError{Code: "22001"}))
	assert.True(t, isStringTooLong(errors.Wrap(&pgconn.PgError{Code: "22001"}, "insert")))
	assert.False(t, isStringTooLong(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isStringTooLong(errors.New("value too long")))
}
