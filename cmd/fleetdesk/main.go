package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"fleetdesk/config"
	"fleetdesk/internal/delivery"
	"fleetdesk/internal/delivery/http"
	"fleetdesk/internal/delivery/http/middleware"
	"fleetdesk/internal/delivery/http/router/handler"
	"fleetdesk/internal/domain/repository"
	"fleetdesk/internal/infra/auth"
	"fleetdesk/internal/infra/bus"
	"fleetdesk/internal/infra/cache"
	logs "fleetdesk/internal/infra/log"
	"fleetdesk/internal/infra/pubsub"
	"fleetdesk/internal/infra/store"
	"fleetdesk/internal/usecase/impl"
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
		store.NewClient,
		bus.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewReminderRepository,
			store.NewVehicleRepository,
			newUserRepository,
		),
	)
}

// newUserRepository wraps the store-backed directory with the configured
// cache: shared through Redis when a URL is set, in-process otherwise.
func newUserRepository(client *store.Client, cfg *config.Config, logger *slog.Logger) (repository.UserRepository, error) {
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return cache.NewCachedUserRepository(store.NewUserRepository(client), redisClient, cfg, logger), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTIdentityService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReminderService,
			impl.NewListViewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReminderHandler,
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
