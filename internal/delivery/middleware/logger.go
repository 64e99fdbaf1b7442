package middleware

import (
	"log/slog"

	"gatehouse/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogger writes one access-log line per request. Request and response
// bodies are never logged, so credentials and tokens stay out of the log.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	defaultLevel := slog.LevelDebug
	if cfg.Env.Debug {
		defaultLevel = slog.LevelInfo
	}

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     defaultLevel,
		ClientErrorLevel: slog.LevelInfo,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	})
}

// RenderErrors passes handler errors to the echo error handler and returns nil,
// so the access logger above it records the status the client actually got.
func RenderErrors(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := next(c); err != nil {
			slogecho.AddCustomAttributes(c, slog.String("error", err.Error()))
			c.Error(err)
		}

		return nil
	}
}
