// Package pricing computes order amounts. It is deterministic by contract:
// no clock, no randomness, no I/O beyond the injected product lookup.
package pricing

import (
	"context"
	"math"

	"storefront/internal/domain/entity"
)

// SurchargeRate is the fixed rate applied on top of the subtotal.
const SurchargeRate = 0.02

// ProductLookup resolves a product id to its catalog entry. A nil product or
// an error means the reference could not be resolved.
type ProductLookup func(ctx context.Context, productID string) (*entity.Product, error)

// ComputeAmount prices an item list against the catalog at the list price.
// The discounted offer price is a storefront display concern; the charged
// amount always uses Price. Items whose product cannot be resolved contribute
// zero to the subtotal rather than aborting the order; a stale cart reference
// must not block checkout. The surcharge is floor(subtotal * 2%), added to
// the subtotal.
func ComputeAmount(ctx context.Context, items []entity.OrderItem, lookup ProductLookup) float64 {
	var subtotal float64
	for _, item := range items {
		product, err := lookup(ctx, item.ProductID)
		if err != nil || product == nil {
			continue
		}
		subtotal += product.Price * float64(item.Quantity)
	}

	return subtotal + Surcharge(subtotal)
}

// Surcharge returns the fixed-rate surcharge for a subtotal, floored to an
// integer unit.
func Surcharge(subtotal float64) float64 {
	return math.Floor(subtotal * SurchargeRate)
}
