package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/repository"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
			postgres.NewOrderRepository,
		),
	)
}

// newOrderBatchUsecase binds the configured window bounds.
func newOrderBatchUsecase(cfg *config.Config, orderRepo repository.OrderRepository, logger *slog.Logger) usecase.OrderBatchUsecase {
	return impl.NewOrderBatchService(orderRepo, logger, cfg.Checkout.MaxBatchSize, cfg.Checkout.MaxBatchWait)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newOrderBatchUsecase,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
