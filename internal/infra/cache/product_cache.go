// Package cache provides a read-through Redis layer over the product catalog.
// Checkout pricing resolves every item against the catalog, so hot products
// are served from Redis instead of hitting Postgres per order line.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	productKeyPrefix = "product:"
	catalogKey       = "products:all"
	defaultTTL       = 5 * time.Minute
)

// RedisParams holds dependencies for the Redis client, injected by Fx
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the shared Redis client with lifecycle management.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis must be configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// cachedProductRepository decorates a ProductRepository with a read-through
// cache. Reads fall back to the inner repository on any cache failure; the
// cache is an accelerator, never a source of truth.
type cachedProductRepository struct {
	inner  repository.ProductRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedProductRepository wraps the given repository with Redis caching.
func NewCachedProductRepository(inner repository.ProductRepository, client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.ProductRepository {
	ttl := defaultTTL
	if cfg.Redis != nil && cfg.Redis.TTL > 0 {
		ttl = cfg.Redis.TTL
	}

	return &cachedProductRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Create writes through to the store and drops the catalog listing so the
// next read sees the new entry.
func (repo *cachedProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.inner.Create(ctx, product); err != nil {
		return err
	}

	if err := repo.client.Del(ctx, catalogKey).Err(); err != nil {
		repo.logger.Warn("failed to invalidate catalog cache", "error", err)
	}

	return nil
}

// FindByID serves the product from Redis when present, falling back to the
// store and populating the cache on a miss.
func (repo *cachedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	key := productKeyPrefix + id.String()

	payload, err := repo.client.Get(ctx, key).Bytes()
	if err == nil {
		var product entity.Product
		if unmarshalErr := json.Unmarshal(payload, &product); unmarshalErr == nil {
			return &product, nil
		}
		// A corrupt entry falls through to the store and gets rewritten.
	} else if !errors.Is(err, redis.Nil) {
		repo.logger.Warn("product cache read failed", "error", err)
	}

	product, err := repo.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	repo.set(ctx, key, product)

	return product, nil
}

// FindAll serves the catalog listing from Redis when present.
func (repo *cachedProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	payload, err := repo.client.Get(ctx, catalogKey).Bytes()
	if err == nil {
		var products []*entity.Product
		if unmarshalErr := json.Unmarshal(payload, &products); unmarshalErr == nil {
			return products, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		repo.logger.Warn("catalog cache read failed", "error", err)
	}

	products, err := repo.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	repo.set(ctx, catalogKey, products)

	return products, nil
}

// FindBySeller always hits the store: seller views follow their own writes
// and are far colder than the public catalog.
func (repo *cachedProductRepository) FindBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	return repo.inner.FindBySeller(ctx, sellerID)
}

func (repo *cachedProductRepository) set(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := repo.client.Set(ctx, key, payload, repo.ttl).Err(); err != nil {
		repo.logger.Warn("product cache write failed", "key", key, "error", err)
	}
}
