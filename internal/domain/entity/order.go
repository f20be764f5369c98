package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a persisted order. Orders start as
// "placed"; sellers advance the status from there. No backward transitions.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// OrderItem is one (product, quantity) pair as submitted at checkout. The
// product reference is kept raw, not re-validated against the catalog.
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int64  `json:"quantity"`
}

// Order is an immutable fact once written by the batch consumer: items and
// amount never change in place, only the status progresses. The checkout
// handler never creates one directly.
type Order struct {
	ID             uuid.UUID
	UserID         string
	Items          []OrderItem
	Amount         float64 // Final amount snapshotted at checkout, surcharge included.
	AddressID      uuid.UUID
	Status         OrderStatus
	IdempotencyKey string // Per-checkout-attempt key; deduplicates transport redelivery.
	PlacedAt       time.Time
	CreatedAt      time.Time
}
