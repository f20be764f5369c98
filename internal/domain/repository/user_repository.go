// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned when a create collides with an existing
// record for the same provider id. Sync handlers treat it as already-synced.
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrCartVersionConflict is returned when a compare-and-swap cart write loses
// against a concurrent writer. Callers retry with a fresh read.
var ErrCartVersionConflict = errors.New("cart version conflict")

// UserRepository defines the standard operations for user persistence. The
// local store is keyed on the identity provider's id, so repeated creates for
// the same id collapse to one record.
type UserRepository interface {
	// FindByID retrieves a single user by their provider-assigned id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user record. Returns ErrUserAlreadyExists when
	// the provider id is already present.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the mutable profile fields (name, email, avatar) of
	// an existing record. Returns ErrUserNotFound when the record is absent.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the record for the given provider id. Deleting an
	// absent record is a no-op success.
	Delete(ctx context.Context, id string) error

	// ReplaceCart swaps the user's entire cart for the given mapping, but
	// only when the stored cart version still equals expectedVersion.
	// Returns ErrCartVersionConflict when a concurrent writer won.
	ReplaceCart(ctx context.Context, userID string, items entity.CartItems, expectedVersion int64) error
}
