package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"fleetdesk/config"
	"fleetdesk/internal/delivery"
	"fleetdesk/internal/delivery/worker"
	"fleetdesk/internal/delivery/worker/handler"
	"fleetdesk/internal/domain/service"
	logs "fleetdesk/internal/infra/log"
	"fleetdesk/internal/infra/notification"
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewReminderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushService,
			newMailService,
		),
	)
}

// newPushService builds the Firebase push channel when configured.
// Without a Firebase section the dispatcher simply skips push fan-out.
func newPushService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push notifications are optional
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase)
}

// newMailService builds the Resend mail channel when configured.
func newMailService(cfg *config.Config) (service.MailService, error) {
	if cfg.Mail == nil {
		return nil, nil // Mail notifications are optional
	}

	return notification.NewResendMailService(cfg.Mail)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
