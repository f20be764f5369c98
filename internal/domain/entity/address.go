package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by the user who created it. Orders
// reference addresses by id only.
type Address struct {
	ID        uuid.UUID
	UserID    string
	FullName  string
	Phone     string
	Area      string
	City      string
	State     string
	Zip       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
