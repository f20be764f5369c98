package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:text;not null;index"`
	FullName  string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:text;not null"`
	Area      string    `gorm:"type:text;not null"`
	City      string    `gorm:"type:text;not null"`
	State     string    `gorm:"type:text;not null"`
	Zip       string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
