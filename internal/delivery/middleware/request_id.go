// Package middleware holds transport-neutral echo middleware shared by every HTTP server.
package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "gatehouse/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Client-supplied IDs are echoed into logs and headers, so only short opaque tokens are trusted.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// RequestIDMiddleware assigns every request an ID and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id header or generates a UUID. The
// chosen ID replaces the inbound header so the access log never records a
// rejected client value.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID.MatchString(requestID) {
			requestID = uuid.New().String()
		}

		c.Request().Header.Set(deliverycontext.HeaderXRequestID, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		deliverycontext.SetRequestScope(c, requestID, m.logger.With(slog.String("request_id", requestID)))

		return next(c)
	}
}
