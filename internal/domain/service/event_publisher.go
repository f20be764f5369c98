package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// OrderEventName is the transport-level name of the checkout event.
const OrderEventName = "order/created"

// OrderEvent is the payload emitted by checkout and consumed by the batch
// worker. It exists only on the transport between emission and consumption;
// the transport owns it until the consumer persists it as an Order.
type OrderEvent struct {
	RequestID      string             `json:"request_id,omitempty"` // For distributed tracing
	IdempotencyKey string             `json:"idempotency_key"`      // Per-checkout-attempt key, deduplicates redelivery
	UserID         string             `json:"user_id"`
	Items          []entity.OrderItem `json:"items"`
	Amount         float64            `json:"amount"`
	AddressID      string             `json:"address"`
	Status         string             `json:"status"`
	PlacedAt       time.Time          `json:"date"`
}

// OrderEventPublisher defines the interface for handing order events to the
// at-least-once delivery transport.
type OrderEventPublisher interface {
	// PublishOrderEvent emits exactly one order event for async persistence.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
