package context

import (
	"context"

	"gatehouse/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetIdentity attaches the identity to both the echo.Context and the request context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoKeyIdentity, identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the identity set by the access gate, if any.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(echoKeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}

// WithIdentity returns a new context carrying the identity.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext extracts the identity from context.Context.
func IdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*entity.Identity)

	return identity, ok && identity != nil
}
