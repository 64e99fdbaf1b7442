package main

import (
	"context"
	"log/slog"
	"os"

	"gatehouse/config"
	"gatehouse/internal/delivery"
	"gatehouse/internal/delivery/http"
	"gatehouse/internal/delivery/http/middleware"
	"gatehouse/internal/delivery/http/router/handler"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/auth"
	"gatehouse/internal/infra/jokes"
	logs "gatehouse/internal/infra/log"
	"gatehouse/internal/infra/metrics"
	"gatehouse/internal/infra/persistence/memory"
	"gatehouse/internal/infra/persistence/postgres"
	"gatehouse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserRepository,
		),
	)
}

// newUserRepository picks the credential store named by store.driver.
func newUserRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.UserRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("Using the in-memory credential store; users are lost on restart")

		return memory.NewUserRepository(), nil
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(db), nil
	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			jokes.NewStaticProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewJokeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewJokeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
