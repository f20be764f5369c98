package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    string                       `gorm:"type:text;not null;index"`
	Name        string                       `gorm:"type:text;not null"`
	Description string                       `gorm:"type:text;not null"`
	Category    string                       `gorm:"type:text;not null;index"`
	Price       float64                      `gorm:"type:decimal(12,2);not null"`
	OfferPrice  float64                      `gorm:"type:decimal(12,2);not null"`
	ImageURLs   datatypes.JSONSlice[string]  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
