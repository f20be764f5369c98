package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase owns the server-side cart snapshot. The client keeps its own
// mirror and pushes full replacements; the server snapshot is what checkout
// reads.
type CartUsecase interface {
	// GetCart returns the persisted cart for the user, normalized so that
	// no entry carries a non-positive quantity.
	GetCart(ctx context.Context, userID string) (entity.CartItems, error)

	// ReplaceCart overwrites the persisted cart with the given items.
	// Entries with non-positive quantities are dropped before storing.
	ReplaceCart(ctx context.Context, userID string, items entity.CartItems) error
}

// UserUsecase exposes read access to the synchronized user record.
type UserUsecase interface {
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}
