package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new catalog entry.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindAll lists the whole catalog, newest first.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindBySeller lists the catalog entries owned by one seller, newest first.
func (repo *productRepository) FindBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		OfferPrice:  data.OfferPrice,
		ImageURLs:   []string(data.ImageURLs),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		OfferPrice:  data.OfferPrice,
		ImageURLs:   datatypes.NewJSONSlice(data.ImageURLs),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
