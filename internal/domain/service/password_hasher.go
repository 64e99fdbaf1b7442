// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted verifier from a plaintext password.
	Hash(ctx context.Context, password string) (string, error)

	// Check compares a plaintext password with a verifier. A mismatch is
	// (false, nil); a verifier that cannot be parsed is an error.
	Check(ctx context.Context, password, hash string) (bool, error)
}
