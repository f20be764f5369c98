// Package worker hosts the batch consumer process: an HTTP surface for
// Pub/Sub push deliveries and health checks, plus the batching loop that
// turns order events into persisted rows.
package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/middleware"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	server     *echo.Echo
	batcher    usecase.OrderBatchUsecase
	cancelRun  context.CancelFunc
	runStopped chan struct{}
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Batcher     usecase.OrderBatchUsecase
	PushHandler *handler.PushHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint, used by the local development transport and
	// by Google push subscriptions
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:        params.Cfg,
		logger:     params.Logger,
		server:     e,
		batcher:    params.Batcher,
		runStopped: make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the batching loop, the pull subscriber when configured, and
// the worker HTTP server.
func (s *workerServer) Serve(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancelRun = cancel

	go func() {
		defer close(s.runStopped)

		if err := s.batcher.Run(runCtx); err != nil {
			s.logger.Error("[Worker] Batch loop stopped", slog.Any("error", err))
		}
	}()

	if s.cfg.PubSub != nil && s.cfg.PubSub.Provider == constants.PubSubProviderGoogle && s.cfg.PubSub.SubscriptionID != "" {
		subscriber, err := pubsub.NewOrderEventSubscriber(runCtx, s.cfg.PubSub.ProjectID, s.cfg.PubSub.SubscriptionID, s.logger)
		if err != nil {
			cancel()

			return errors.Wrap(err, "create pull subscriber")
		}

		go func() {
			defer subscriber.Close()

			receive := func(msgCtx context.Context, event *service.OrderEvent, done func(error)) {
				if err := s.batcher.Submit(msgCtx, event, done); err != nil {
					done(err)
				}
			}
			if err := subscriber.Receive(runCtx, receive); err != nil {
				s.logger.Error("[Worker] Pull subscriber stopped", slog.Any("error", err))
			}
		}()
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server and drains the batch loop
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return errors.WithStack(err)
	}

	// Stop the batch loop after the HTTP surface so no push delivery races
	// a closed batcher. Run flushes its pending window before returning.
	if s.cancelRun != nil {
		s.cancelRun()
		select {
		case <-s.runStopped:
		case <-shutdownCtx.Done():
			return errors.WithStack(shutdownCtx.Err())
		}
	}

	return nil
}
