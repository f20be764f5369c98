package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address id cannot be resolved.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines delivery-address persistence operations.
type AddressRepository interface {
	// Create persists a new address owned by a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves a single address by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser lists the addresses owned by a user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Address, error)
}
