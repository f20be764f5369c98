package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/identity"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		identity.Module,
	)
}

type productRepoParams struct {
	fx.In

	Lc     fx.Lifecycle
	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// newProductRepository layers the Redis read-through cache over the store
// when a cache is configured.
func newProductRepository(params productRepoParams) (repository.ProductRepository, error) {
	inner := postgres.NewProductRepository(params.DB)
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return inner, nil
	}

	client, err := cache.NewRedisClient(cache.RedisParams{
		Lifecycle: params.Lc,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return cache.NewCachedProductRepository(inner, client, params.Config, params.Logger), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			newProductRepository,
			postgres.NewOrderRepository,
			postgres.NewAddressRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newCartUsecase binds the configured CAS retry count.
func newCartUsecase(cfg *config.Config, txManager repository.TransactionManager, logger *slog.Logger) usecase.CartUsecase {
	return impl.NewCartService(txManager, logger, cfg.Checkout.CartWriteRetries)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentitySyncService,
			newCartUsecase,
			impl.NewUserService,
			impl.NewCheckoutService,
			impl.NewOrderQueryService,
			impl.NewCatalogService,
			impl.NewAddressService,
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
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewAddressHandler,
			handler.NewWebhookHandler,
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
