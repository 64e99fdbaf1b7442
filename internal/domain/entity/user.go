// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxUsernameLength is the longest username, in characters, the store accepts.
const MaxUsernameLength = 255

// User is a registered account. It is created once at registration and never
// modified afterwards.
type User struct {
	ID           uuid.UUID // Assigned by the credential store on creation.
	Username     string    // Unique, non-empty login name.
	PasswordHash string    // bcrypt verifier; the plaintext password is never stored.
	CreatedAt    time.Time
}

// Identity is the caller identity recovered from a verified token. It lives
// only for the duration of a single request.
type Identity struct {
	UserID    uuid.UUID
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
