// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // HS256 signing key, loaded once from configuration.
	ttl    time.Duration // Lifetime of issued tokens.
	issuer string
	now    func() time.Time
}

// JWTOption customises a jwtService.
type JWTOption func(*jwtService)

// WithClock replaces time.Now, which lets tests issue and check expired tokens.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl, issuer := time.Duration(0), ""
	if cfg.Auth != nil {
		ttl, issuer = cfg.Auth.TokenTTL, cfg.Auth.Issuer
	}

	return NewJWTServiceWithSecret(cfg.SecretKey.Access, ttl, issuer)
}

// NewJWTServiceWithSecret creates a token service from explicit parameters.
func NewJWTServiceWithSecret(secret string, ttl time.Duration, issuer string, opts ...JWTOption) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// GenerateToken creates a signed access token for the given user.
func (s *jwtService) GenerateToken(userID uuid.UUID, username string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks signature and expiry and recovers the identity claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, &service.TokenError{Reason: classifyJWTError(err), Err: err}
	}
	if !token.Valid {
		return nil, &service.TokenError{Reason: service.TokenReasonClaims, Err: jwt.ErrTokenInvalidClaims}
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, &service.TokenError{Reason: service.TokenReasonClaims, Err: errors.Wrap(err, "parse subject")}
	}
	claims.UserID = userID

	return claims, nil
}

func classifyJWTError(err error) service.TokenReason {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.TokenReasonMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.TokenReasonSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.TokenReasonExpired
	default:
		return service.TokenReasonClaims
	}
}
