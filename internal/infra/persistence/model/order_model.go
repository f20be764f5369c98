package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table. The unique
// index on IdempotencyKey is what makes redelivered batches safe to replay.
type OrderModel struct {
	ID             uuid.UUID                                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         string                                   `gorm:"type:text;not null;index"`
	Items          datatypes.JSONType[[]entity.OrderItem]   `gorm:"not null"`
	Amount         float64                                  `gorm:"type:decimal(12,2);not null"`
	AddressID      uuid.UUID                                `gorm:"type:uuid;not null"`
	Status         string                                   `gorm:"type:text;not null"`
	IdempotencyKey string                                   `gorm:"type:text;not null;uniqueIndex"`
	PlacedAt       time.Time                                `gorm:"not null;index:,sort:desc"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
