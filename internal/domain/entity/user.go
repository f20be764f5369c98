// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// CartItems is the authoritative cart state for a user: a mapping from
// product id to a positive quantity. Absent entries mean zero; a quantity
// that reaches zero removes the entry instead of persisting a zero.
type CartItems map[string]int64

// Normalize returns a copy of the cart with all non-positive quantities removed.
func (c CartItems) Normalize() CartItems {
	normalized := make(CartItems, len(c))
	for productID, quantity := range c {
		if quantity > 0 {
			normalized[productID] = quantity
		}
	}

	return normalized
}

// Count returns the sum of all positive quantities in the cart.
func (c CartItems) Count() int64 {
	var total int64
	for _, quantity := range c {
		if quantity > 0 {
			total += quantity
		}
	}

	return total
}

// User is the local mirror of an identity-provider account. The ID is the
// provider's identifier, not locally generated, and is immutable for the
// lifetime of the record.
type User struct {
	ID          string    // Provider-assigned identifier, primary key of the local record.
	Name        string    // Display name synthesized from the provider's name fields.
	Email       string    // Primary email address, empty when the provider omits it.
	AvatarURL   string    // Avatar image reference, empty when absent.
	Cart        CartItems // Server-held authoritative cart.
	CartVersion int64     // Monotonic version gating compare-and-swap cart writes.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
