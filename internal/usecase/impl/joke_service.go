package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"go.uber.org/fx"
)

type jokeService struct {
	provider service.JokeProvider
	logger   *slog.Logger
}

// JokeServiceParams holds dependencies for JokeService, injected by Fx.
type JokeServiceParams struct {
	fx.In

	Provider service.JokeProvider
	Logger   *slog.Logger
}

func NewJokeService(params JokeServiceParams) usecase.JokeUsecase {
	return &jokeService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// ListJokes delegates to the provider. Callers must already be past the access gate.
func (srv *jokeService) ListJokes(ctx context.Context) ([]entity.Joke, error) {
	jokes, err := srv.provider.ListJokes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jokes")
	}

	logger := deliverycontext.LoggerFromContext(ctx, srv.logger)
	if identity, ok := deliverycontext.IdentityFromContext(ctx); ok {
		logger = logger.With(slog.String("username", identity.Username))
	}
	logger.Debug("Jokes served", slog.Int("count", len(jokes)))

	return jokes, nil
}
