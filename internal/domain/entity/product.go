package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry owned by a seller. Prices are snapshotted onto
// orders at checkout time, so later edits never alter historical order amounts.
type Product struct {
	ID          uuid.UUID
	SellerID    string  // Identity-provider id of the owning seller.
	Name        string
	Description string
	Category    string
	Price       float64 // List price per unit.
	OfferPrice  float64 // Discounted display price; cart views price with it, checkout charges Price.
	ImageURLs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
