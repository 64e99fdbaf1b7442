// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"runtime"

	"gatehouse/config"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
	// slots bounds concurrent bcrypt work so hashing cannot starve other requests.
	slots *semaphore.Weighted
}

// NewBcryptHasher builds the hasher from the auth configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost, concurrency := bcrypt.DefaultCost, runtime.NumCPU()
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.HashConcurrency > 0 {
			concurrency = cfg.Auth.HashConcurrency
		}
	}

	return NewBcryptHasherWithCost(cost, concurrency)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost and concurrency limit.
func NewBcryptHasherWithCost(cost, concurrency int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	return &bcryptHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(concurrency)),
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "wait for hashing slot")
	}
	defer h.slots.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domainerrors.ErrPasswordTooLong.WrapMessage("bcrypt input exceeds 72 bytes")
		}

		return "", errors.Wrap(err, "generate bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "wait for hashing slot")
	}
	defer h.slots.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, domainerrors.ErrCorruptVerifier.WithDetails(err.Error())
	}
}
