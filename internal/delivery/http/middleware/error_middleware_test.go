package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gatehouse/internal/delivery/http/response"
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantLogged  bool
	}{
		{
			name:        "validation",
			err:         domainerrors.ErrValidationFailed.WithDetails("Key: 'RegisterInput.Password' failed"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username and password required",
		},
		{
			name:        "wrapped username taken",
			err:         domainerrors.ErrUsernameTaken.WrapMessage("duplicate key"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username taken",
		},
		{
			name:        "invalid credentials",
			err:         domainerrors.ErrInvalidCredentials,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid credentials",
		},
		{
			name:        "token required",
			err:         domainerrors.ErrTokenRequired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token required",
		},
		{
			name:        "token invalid",
			err:         domainerrors.ErrTokenInvalid.WithDetails("expired"),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token invalid",
		},
		{
			name:        "store unavailable",
			err:         domainerrors.NewStoreError(errors.New("dial tcp 10.0.0.1:5432"), "find user"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
			wantLogged:  true,
		},
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "echo body too large",
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown",
			err:         errors.New("pq: relation \"users\" does not exist"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
			wantLogged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/auth/register", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.MessageBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
			assert.NotContains(t, rec.Body.String(), "relation")
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
