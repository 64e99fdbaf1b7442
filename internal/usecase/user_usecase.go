// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput is the public projection of a newly created user.
type RegisterOutput struct {
	Username string `json:"username"`
}

// LoginOutput carries the welcome message and the issued access token.
type LoginOutput struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserUsecase defines the registration and login flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
