package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product reference cannot be resolved.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	// Create persists a new catalog entry for a seller.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll lists the whole public catalog, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindBySeller lists the catalog entries owned by one seller, newest first.
	FindBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error)
}
