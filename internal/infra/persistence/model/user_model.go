// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import (
	"time"

	"storefront/internal/domain/entity"

	"gorm.io/datatypes"
)

// UserModel is the GORM-specific struct for the 'users' table. The primary key
// is the identity provider's id, so duplicate create deliveries collide on it.
type UserModel struct {
	ID          string                               `gorm:"type:text;primary_key"`
	Name        string                               `gorm:"type:text;not null"`
	Email       string                               `gorm:"type:text;not null;index"`
	AvatarURL   string                               `gorm:"type:text;not null"`
	Cart        datatypes.JSONType[entity.CartItems] `gorm:"not null"`
	CartVersion int64                                `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
