// Package cartmirror holds the client-side optimistic cart. Mutations apply
// to the local mapping synchronously and push the full resulting snapshot to
// the server asynchronously; the server copy stays authoritative and a fetch
// replaces the mirror wholesale.
package cartmirror

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"storefront/internal/domain/entity"
)

// CartAPI is the server port the mirror pushes through.
type CartAPI interface {
	// FetchCart returns the server's authoritative cart.
	FetchCart(ctx context.Context) (entity.CartItems, error)

	// ReplaceCart overwrites the server cart with the given snapshot.
	ReplaceCart(ctx context.Context, items entity.CartItems) error
}

// Mirror is the optimistic local cart. A failed push does not roll the
// mirror back; the divergence lasts until the next fetch replaces it.
type Mirror struct {
	api    CartAPI
	logger *slog.Logger

	mu    sync.Mutex
	items entity.CartItems
}

// New creates an empty mirror over the given server port.
func New(api CartAPI, logger *slog.Logger) *Mirror {
	return &Mirror{
		api:    api,
		logger: logger,
		items:  entity.CartItems{},
	}
}

// AddItem increments the product's quantity by one and pushes the snapshot.
func (m *Mirror) AddItem(ctx context.Context, productID string) {
	m.mu.Lock()
	m.items[productID]++
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	go m.push(ctx, snapshot)
}

// SetQuantity sets the product's quantity and pushes the snapshot. A
// quantity of zero or less removes the entry.
func (m *Mirror) SetQuantity(ctx context.Context, productID string, quantity int64) {
	m.mu.Lock()
	if quantity <= 0 {
		delete(m.items, productID)
	} else {
		m.items[productID] = quantity
	}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	go m.push(ctx, snapshot)
}

// ReplaceFromServer fetches the authoritative cart and replaces the mirror
// entirely, discarding any un-pushed local state.
func (m *Mirror) ReplaceFromServer(ctx context.Context) error {
	items, err := m.api.FetchCart(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.items = items.Normalize()
	m.mu.Unlock()

	return nil
}

// Items returns a copy of the current mirror state.
func (m *Mirror) Items() entity.CartItems {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshotLocked()
}

// Count returns the sum of all quantities in the mirror.
func (m *Mirror) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.items.Count()
}

// Amount prices the mirror against the given catalog: offer price times
// quantity for every entry whose product is known, unknown products
// contribute zero, and the total is floored to two decimals.
func (m *Mirror) Amount(catalog map[string]*entity.Product) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for productID, quantity := range m.items {
		if quantity <= 0 {
			continue
		}
		product, ok := catalog[productID]
		if !ok || product == nil {
			continue
		}
		total += product.OfferPrice * float64(quantity)
	}

	return math.Floor(total*100) / 100
}

func (m *Mirror) snapshotLocked() entity.CartItems {
	snapshot := make(entity.CartItems, len(m.items))
	for productID, quantity := range m.items {
		snapshot[productID] = quantity
	}

	return snapshot
}

func (m *Mirror) push(ctx context.Context, snapshot entity.CartItems) {
	if err := m.api.ReplaceCart(ctx, snapshot); err != nil {
		// The mirror keeps its optimistic state; the next fetch reconciles.
		m.logger.Warn("cart push failed", slog.Any("error", err))
	}
}
