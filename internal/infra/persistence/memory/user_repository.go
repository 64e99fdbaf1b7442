// Package memory provides an in-process credential store for local runs and tests.
package memory

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"

	"github.com/google/uuid"
)

// UserRepository keeps users in a map keyed by username.
// The mutex makes check-then-insert atomic, so a username is registered at most once.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository returns an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]entity.User)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewStoreError(err, "find user by username")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(err, "create user")
	}
	if user.Username == "" || user.PasswordHash == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
	}
	if utf8.RuneCountInString(user.Username) > entity.MaxUsernameLength {
		return domainerrors.ErrUsernameTooLong.WrapMessage("username exceeds column width")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users[user.Username] = *user

	return nil
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// Clear removes every user.
func (r *UserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.users)
}
