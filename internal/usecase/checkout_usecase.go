package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput is the checkout request after binding. Items reference
// product ids with positive quantities; Address is the id of a stored
// delivery address.
type PlaceOrderInput struct {
	Items   []entity.OrderItem `json:"items" validate:"required,min=1,dive"`
	Address uuid.UUID          `json:"address" validate:"required"`
}

// PlaceOrderOutput reports the accepted checkout. The order itself is
// written asynchronously by the batch worker; IdempotencyKey identifies it
// across retries.
type PlaceOrderOutput struct {
	IdempotencyKey string  `json:"idempotencyKey"`
	Amount         float64 `json:"amount"`
}

// CheckoutUsecase validates a checkout, prices it, publishes the order
// event, and clears the server-side cart.
type CheckoutUsecase interface {
	PlaceOrder(ctx context.Context, userID string, input *PlaceOrderInput) (*PlaceOrderOutput, error)
}

// OrderQueryUsecase reads orders that the batch worker has persisted.
type OrderQueryUsecase interface {
	// ListUserOrders returns the caller's orders, newest first.
	ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAllOrders returns every order, newest first. Seller only.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
}
