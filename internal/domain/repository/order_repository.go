package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order id cannot be resolved.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence operations. Orders are written
// only by the batch consumer; reads serve the user and seller views.
type OrderRepository interface {
	// CreateBatch bulk-inserts a batch of orders in arrival order and
	// returns the number of rows actually persisted. Rows whose idempotency
	// key already exists are skipped, making redelivered batches safe to
	// reprocess. A returned error means nothing in the batch was committed.
	CreateBatch(ctx context.Context, orders []*entity.Order) (int, error)

	// FindByUser lists a user's orders, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// FindAll lists every order for the seller-facing administrative view,
	// newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)
}
