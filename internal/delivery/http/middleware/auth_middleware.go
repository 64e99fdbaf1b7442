package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
)

// AuthMiddleware is the access gate in front of protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	metrics  *metrics.Metrics
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Metrics      *metrics.Metrics `optional:"true"`
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, metrics: params.Metrics}
}

// Authenticate has exactly three outcomes: no token (TokenRequired), a token
// the verifier rejects (TokenInvalid), or a verified identity attached to the
// request before next runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c.Request().Header.Get(authorizationHeader))
		if tokenString == "" {
			m.observe(domainerrors.ErrTokenRequired)

			return domainerrors.ErrTokenRequired
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			m.observe(domainerrors.ErrTokenInvalid)
			if tokenErr, ok := errors.Find[*service.TokenError](err); ok {
				return domainerrors.ErrTokenInvalid.WithDetails(string(tokenErr.Reason))
			}

			return domainerrors.ErrTokenInvalid
		}

		identity := &entity.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
		}
		if claims.IssuedAt != nil {
			identity.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			identity.ExpiresAt = claims.ExpiresAt.Time
		}
		deliverycontext.SetIdentity(c, identity)
		slogecho.AddCustomAttributes(c, slog.String("username", identity.Username))
		m.observe(nil)

		return next(c)
	}
}

// extractToken accepts both a raw token and the "Bearer <token>" form. A bare
// scheme carries no token.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	scheme, rest, found := strings.Cut(header, " ")
	switch {
	case strings.EqualFold(header, bearerScheme):
		return ""
	case found && strings.EqualFold(scheme, bearerScheme):
		return strings.TrimSpace(rest)
	default:
		return header
	}
}

func (m *AuthMiddleware) observe(err error) {
	if m.metrics != nil {
		m.metrics.ObserveGateDecision(metrics.Outcome(err))
	}
}
