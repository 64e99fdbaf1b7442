// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const welcomePrefix = "welcome, "

// dummyPassword only feeds the verifier used for unknown usernames.
const dummyPassword = "gatehouse-timing-equaliser"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger

	dummyMu   sync.Mutex
	dummyHash string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// Register validates the credentials, hashes the password and stores the new user.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, domainerrors.ErrUsernameTaken
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check username")
	}

	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
	}
	// A concurrent registration that slipped past the lookup surfaces here as ErrUsernameTaken.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("username", user.Username), slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{Username: user.Username}, nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.equaliseTiming(ctx, input.Password)
		srv.log(ctx).Debug("Login rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	ok, err := srv.hasher.Check(ctx, input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored verifier is unusable", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.log(ctx).Debug("Login rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.Time("tokenExpiresAt", expiresAt))

	return &usecase.LoginOutput{
		Message: welcomePrefix + user.Username,
		Token:   token,
	}, nil
}

// validateInput reports a missing field before an over-long username.
func (srv *userService) validateInput(input any) error {
	err := srv.validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.Find[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	tooLong := false
	for _, fieldErr := range fieldErrs {
		switch {
		case fieldErr.Tag() == "required":
			return domainerrors.ErrValidationFailed.WithDetails(fieldErr.Error())
		case fieldErr.Field() == "Username" && fieldErr.Tag() == "max":
			tooLong = true
		}
	}
	if tooLong {
		return domainerrors.ErrUsernameTooLong
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// equaliseTiming runs one bcrypt comparison for an unknown username so the
// response time matches that of a wrong password.
func (srv *userService) equaliseTiming(ctx context.Context, password string) {
	dummyHash, err := srv.dummyVerifier(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to prepare dummy verifier", slog.Any("error", err))

		return
	}

	_, _ = srv.hasher.Check(ctx, password, dummyHash)
}

// dummyVerifier hashes dummyPassword on first use and keeps the result. The
// hash ignores request cancellation, and a failed attempt is retried by the
// next caller instead of being latched.
func (srv *userService) dummyVerifier(ctx context.Context) (string, error) {
	srv.dummyMu.Lock()
	defer srv.dummyMu.Unlock()

	if srv.dummyHash != "" {
		return srv.dummyHash, nil
	}

	hash, err := srv.hasher.Hash(context.WithoutCancel(ctx), dummyPassword)
	if err != nil {
		return "", errors.Wrap(err, "hash dummy password")
	}
	srv.dummyHash = hash

	return hash, nil
}
