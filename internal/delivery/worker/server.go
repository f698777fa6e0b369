package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fleetdesk/config"
	"fleetdesk/internal/delivery"
	"fleetdesk/internal/delivery/middleware"
	"fleetdesk/internal/delivery/worker/handler"
	"fleetdesk/internal/domain/lifecycle"
	"fleetdesk/internal/usecase"
)

type workerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *echo.Echo
	dispatch usecase.DispatchUsecase

	stopSweep context.CancelFunc
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Dispatch    usecase.DispatchUsecase
}

// NewServer creates the worker server: a push endpoint for reminder events
// plus a periodic sweep notifying due reminders.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		server:   e,
		dispatch: params.Dispatch,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the due-reminder sweep and the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	sweepCtx, cancel := context.WithCancel(context.Background())
	s.stopSweep = cancel
	go s.sweepDue(sweepCtx)

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// sweepDue periodically dispatches reminders whose trigger has passed.
func (s *workerServer) sweepDue(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Dispatch.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := s.dispatch.DispatchDue(ctx, time.Now())
			if err != nil {
				s.logger.Error("[Worker] Due-reminder sweep failed", slog.Any("error", err))

				continue
			}
			if count > 0 {
				s.logger.Info("[Worker] Dispatched due reminders", slog.Int("count", count))
			}
		}
	}
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	if s.stopSweep != nil {
		s.stopSweep()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
