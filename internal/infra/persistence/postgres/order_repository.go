package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateBatch bulk-inserts a window of orders in one statement. Rows whose
// idempotency key already exists are skipped via ON CONFLICT DO NOTHING, so
// replaying a redelivered window writes each order at most once. The insert
// runs in a single implicit transaction: an error means no row was committed.
func (repo *orderRepository) CreateBatch(ctx context.Context, orders []*entity.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	orderModels := make([]*model.OrderModel, 0, len(orders))
	for _, order := range orders {
		orderModels = append(orderModels, fromOrderDomain(order))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idempotency_key"}},
			DoNothing: true,
		}).
		Create(&orderModels)

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert order batch")
	}

	return int(result.RowsAffected), nil
}

// FindByUser lists a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("placed_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindAll lists every order, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("placed_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// --- Mapper Functions ---

func toOrderDomainSlice(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		Items:          data.Items.Data(),
		Amount:         data.Amount,
		AddressID:      data.AddressID,
		Status:         entity.OrderStatus(data.Status),
		IdempotencyKey: data.IdempotencyKey,
		PlacedAt:       data.PlacedAt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Items:          datatypes.NewJSONType(data.Items),
		Amount:         data.Amount,
		AddressID:      data.AddressID,
		Status:         string(data.Status),
		IdempotencyKey: data.IdempotencyKey,
		PlacedAt:       data.PlacedAt,
		CreatedAt:      data.CreatedAt,
	}
}
