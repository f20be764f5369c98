package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts returns the full catalog for the storefront.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one catalog entry.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a catalog entry owned by the calling seller.
func (srv *catalogService) CreateProduct(ctx context.Context, sellerID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.OfferPrice > input.Price {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "offer price exceeds list price")
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		OfferPrice:  input.OfferPrice,
		ImageURLs:   input.ImageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("product created", "productID", product.ID, "sellerID", sellerID)

	return product, nil
}

// ListSellerProducts returns the catalog entries owned by the seller.
func (srv *catalogService) ListSellerProducts(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}
