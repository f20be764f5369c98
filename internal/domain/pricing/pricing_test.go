package pricing

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func catalogLookup(catalog map[string]float64) ProductLookup {
	return func(_ context.Context, productID string) (*entity.Product, error) {
		price, ok := catalog[productID]
		if !ok {
			return nil, errors.New("product not found")
		}

		return &entity.Product{Price: price}, nil
	}
}

func TestComputeAmount_Surcharge(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		quantity int64
		want     float64
	}{
		{name: "round subtotal", price: 500, quantity: 2, want: 1020},  // 1000 + floor(20.00)
		{name: "floored surcharge", price: 999, quantity: 1, want: 1018}, // 999 + floor(19.98)
		{name: "single unit", price: 49, quantity: 1, want: 49},          // floor(0.98) = 0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := catalogLookup(map[string]float64{"p1": tt.price})
			items := []entity.OrderItem{{ProductID: "p1", Quantity: tt.quantity}}

			got := ComputeAmount(context.Background(), items, lookup)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeAmount_ChargesListPriceNotOfferPrice(t *testing.T) {
	lookup := func(_ context.Context, _ string) (*entity.Product, error) {
		return &entity.Product{Price: 1000, OfferPrice: 800}, nil
	}
	items := []entity.OrderItem{{ProductID: "p1", Quantity: 1}}

	got := ComputeAmount(context.Background(), items, lookup)

	// The discounted offer price only feeds cart display totals; the
	// charged amount is 1000 + floor(20), never 800-based.
	assert.Equal(t, float64(1020), got)
}

func TestComputeAmount_Deterministic(t *testing.T) {
	lookup := catalogLookup(map[string]float64{"p1": 199.5, "p2": 75})
	items := []entity.OrderItem{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 1},
	}

	first := ComputeAmount(context.Background(), items, lookup)
	for range 10 {
		assert.Equal(t, first, ComputeAmount(context.Background(), items, lookup))
	}
}

func TestComputeAmount_MissingProductContributesZero(t *testing.T) {
	lookup := catalogLookup(map[string]float64{"p1": 1000})
	items := []entity.OrderItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "gone", Quantity: 5},
	}

	got := ComputeAmount(context.Background(), items, lookup)

	// Only p1 priced: 1000 + floor(20) = 1020, the stale reference adds nothing.
	assert.Equal(t, float64(1020), got)
}

func TestComputeAmount_EmptyItems(t *testing.T) {
	lookup := catalogLookup(nil)

	assert.Equal(t, float64(0), ComputeAmount(context.Background(), nil, lookup))
}
