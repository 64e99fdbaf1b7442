package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/delivery/http/response"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Only the
// client-facing message of an AppError is sent; details and causes of 5xx
// errors go to the log.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := m.resolve(err)
	if status >= http.StatusInternalServerError {
		m.log(c).Error("Request failed",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = response.Message(c, status, message)
	}
	if writeErr != nil {
		m.log(c).Warn("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) resolve(err error) (int, string) {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return appErr.HTTPCode(), appErr.Message()
	}

	if httpErr, ok := errors.Find[*echo.HTTPError](err); ok {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, internalErrorMessage
		}
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}

		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	return http.StatusInternalServerError, internalErrorMessage
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(c.Request().Context(), m.logger)
}
