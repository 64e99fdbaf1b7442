package errors

import (
	"net/http"

	"gatehouse/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Client-facing message
	Details() string   // Detailed error information, never sent to clients
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the client-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are part of the public HTTP contract.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"username and password required",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"username taken",
		"",
	)

	ErrUsernameTooLong = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TOO_LONG",
		"username too long",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_LONG",
		"password too long",
		"",
	)

	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"invalid credentials",
		"",
	)

	ErrTokenRequired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REQUIRED",
		"token required",
		"",
	)

	// ErrTokenInvalid covers malformed, forged and expired tokens alike.
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"token invalid",
		"",
	)

	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST_BODY",
		"invalid request body",
		"",
	)

	ErrCorruptVerifier = NewBaseError(
		http.StatusInternalServerError,
		"CORRUPT_VERIFIER",
		"internal server error",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StoreError represents a credential store failure (StoreUnavailable), implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "credential store unavailable").Error()
}

// Unwrap exposes the driver error for logging and errors.Is checks.
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the client-facing message
func (e *StoreError) Message() string {
	return "internal server error"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
