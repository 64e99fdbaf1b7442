package service

import (
	"fmt"
	"time"

	domainerrors "gatehouse/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for issued tokens.
type Claims struct {
	UserID   uuid.UUID `json:"-"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenReason classifies why a token was rejected. It is for diagnostics only;
// callers always see a single TokenInvalid outcome.
type TokenReason string

const (
	TokenReasonMalformed TokenReason = "malformed"
	TokenReasonSignature TokenReason = "signature"
	TokenReasonExpired   TokenReason = "expired"
	TokenReasonClaims    TokenReason = "claims"
)

// TokenError is the single invalid outcome of token validation.
type TokenError struct {
	Reason TokenReason
	Err    error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token invalid (%s): %v", e.Reason, e.Err)
}

// Unwrap makes every TokenError match domainerrors.ErrTokenInvalid.
func (e *TokenError) Unwrap() []error {
	return []error{domainerrors.ErrTokenInvalid, e.Err}
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateToken issues a signed token for the given user.
	GenerateToken(userID uuid.UUID, username string) (token string, expiresAt time.Time, err error)

	// ValidateToken verifies signature and expiry and returns the embedded claims.
	// Every failure is a *TokenError.
	ValidateToken(tokenString string) (*Claims, error)
}
