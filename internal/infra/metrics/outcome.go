package metrics

import (
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/errors"
)

// Outcome maps a flow result to its counter label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domainerrors.ErrValidationFailed),
		errors.Is(err, domainerrors.ErrUsernameTooLong),
		errors.Is(err, domainerrors.ErrPasswordTooLong):
		return OutcomeValidationFailed
	case errors.Is(err, domainerrors.ErrUsernameTaken):
		return OutcomeUsernameTaken
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	case errors.Is(err, domainerrors.ErrTokenRequired):
		return OutcomeTokenRequired
	case errors.Is(err, domainerrors.ErrTokenInvalid):
		return OutcomeTokenInvalid
	default:
		return OutcomeError
	}
}
