package errors

import (
	"net/http"
	"testing"

	"gatehouse/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrUsernameTaken.WrapMessage("username already exists")

	assert.True(t, errors.Is(err, ErrUsernameTaken))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))

	appErr, ok := errors.Find[AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "username taken", appErr.Message())
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrTokenInvalid.WithDetails("expired")

	assert.True(t, errors.Is(detailed, ErrTokenInvalid))
	assert.Equal(t, "expired", detailed.Details())
	assert.Empty(t, ErrTokenInvalid.Details())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError(cause, "failed to create user")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", err.ErrorCode())
	assert.Equal(t, "internal server error", err.Message())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPublicMessages(t *testing.T) {
	tests := []struct {
		err     *BaseError
		code    int
		message string
	}{
		{ErrValidationFailed, http.StatusBadRequest, "username and password required"},
		{ErrUsernameTaken, http.StatusBadRequest, "username taken"},
		{ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{ErrTokenRequired, http.StatusUnauthorized, "token required"},
		{ErrTokenInvalid, http.StatusUnauthorized, "token invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
			assert.Equal(t, tt.message, tt.err.Message())
		})
	}
}
