// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatehouse/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store.
type UserRepository interface {
	// FindByUsername returns the user or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and fills in its generated ID and CreatedAt.
	// The store's unique constraint is authoritative: a concurrent duplicate
	// surfaces as domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error
}
