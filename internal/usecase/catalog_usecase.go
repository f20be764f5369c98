package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// CreateProductInput is the seller-facing product creation payload.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	OfferPrice  float64  `json:"offerPrice" validate:"required,gt=0"`
	ImageURLs   []string `json:"imageUrls" validate:"required,min=1,dive,url"`
}

// CatalogUsecase exposes the product catalog. Reads serve the storefront;
// writes are limited to seller accounts by the delivery layer.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, sellerID string, input *CreateProductInput) (*entity.Product, error)
	ListSellerProducts(ctx context.Context, sellerID string) ([]*entity.Product, error)
}
