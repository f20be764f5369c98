package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// orderQueryService implements the OrderQueryUsecase interface.
type orderQueryService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderQueryService is the constructor for orderQueryService.
func NewOrderQueryService(
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.OrderQueryUsecase {
	return &orderQueryService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ListUserOrders returns the caller's persisted orders, newest first.
func (srv *orderQueryService) ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListAllOrders returns every persisted order, newest first.
func (srv *orderQueryService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
