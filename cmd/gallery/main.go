package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gallery/config"
	"gallery/internal/delivery"
	"gallery/internal/delivery/http"
	"gallery/internal/delivery/http/middleware"
	"gallery/internal/delivery/http/router/handler"
	"gallery/internal/domain/service"
	"gallery/internal/infra/auth"
	logs "gallery/internal/infra/log"
	"gallery/internal/infra/persistence/postgres"
	"gallery/internal/infra/storage"
	"gallery/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newAvatarStorage,
		),
	)
}

// newAvatarStorage creates the avatar object storage with dependency injection
func newAvatarStorage(ctx context.Context, cfg *config.Config) (service.AvatarStorage, error) {
	if cfg.AvatarStorage == nil {
		return nil, nil // avatar storage is optional
	}

	svc, err := storage.NewMinioAvatarStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar storage: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestContextMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
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
