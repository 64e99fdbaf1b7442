// Package context carries request-scoped values between delivery and usecase layers.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	identityKey
)

// echo.Context keys.
const (
	echoKeyRequestID = "request_id"
	echoKeyIdentity  = "identity"
)

// SetRequestScope records the request ID on the echo.Context and stores the ID
// together with the request-scoped logger in the request context.
func SetRequestScope(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoKeyRequestID, requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey, requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the ID assigned to the request, or "" outside the request-ID middleware.
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}

// RequestIDFromContext is RequestID for code that only sees a context.Context.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// LoggerFromContext returns the request-scoped logger, or fallback when none is set.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
