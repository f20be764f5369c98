package cartmirror

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartAPI records pushed snapshots and signals each push so tests can
// wait for the asynchronous replication without sleeping.
type fakeCartAPI struct {
	mu       sync.Mutex
	pushed   []entity.CartItems
	signal   chan struct{}
	fetched  entity.CartItems
	fetchErr error
	pushErr  error
}

func newFakeCartAPI() *fakeCartAPI {
	return &fakeCartAPI{signal: make(chan struct{}, 16)}
}

func (f *fakeCartAPI) FetchCart(_ context.Context) (entity.CartItems, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	return f.fetched, nil
}

func (f *fakeCartAPI) ReplaceCart(_ context.Context, items entity.CartItems) error {
	f.mu.Lock()
	f.pushed = append(f.pushed, items)
	f.mu.Unlock()
	f.signal <- struct{}{}

	return f.pushErr
}

func (f *fakeCartAPI) waitForPush(t *testing.T) {
	t.Helper()
	select {
	case <-f.signal:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for cart push")
	}
}

func (f *fakeCartAPI) lastPushed() entity.CartItems {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pushed) == 0 {
		return nil
	}

	return f.pushed[len(f.pushed)-1]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMirror_AddItemIncrementsAndPushes(t *testing.T) {
	api := newFakeCartAPI()
	mirror := New(api, testLogger())

	mirror.AddItem(context.Background(), "p1")
	api.waitForPush(t)
	mirror.AddItem(context.Background(), "p1")
	api.waitForPush(t)

	assert.Equal(t, entity.CartItems{"p1": 2}, mirror.Items())
	assert.Equal(t, entity.CartItems{"p1": 2}, api.lastPushed())
}

func TestMirror_SetQuantityZeroRemovesEntry(t *testing.T) {
	api := newFakeCartAPI()
	mirror := New(api, testLogger())

	mirror.SetQuantity(context.Background(), "p1", 3)
	api.waitForPush(t)
	mirror.SetQuantity(context.Background(), "p2", 1)
	api.waitForPush(t)
	mirror.SetQuantity(context.Background(), "p1", 0)
	api.waitForPush(t)

	assert.Equal(t, entity.CartItems{"p2": 1}, mirror.Items())
	assert.Equal(t, int64(1), mirror.Count())
	assert.NotContains(t, api.lastPushed(), "p1")
}

func TestMirror_PushFailureKeepsLocalState(t *testing.T) {
	api := newFakeCartAPI()
	api.pushErr = errors.New("server unavailable")
	mirror := New(api, testLogger())

	mirror.AddItem(context.Background(), "p1")
	api.waitForPush(t)

	// The optimistic state survives the failed replication.
	assert.Equal(t, entity.CartItems{"p1": 1}, mirror.Items())
}

func TestMirror_ReplaceFromServerDiscardsLocalState(t *testing.T) {
	api := newFakeCartAPI()
	api.fetched = entity.CartItems{"server": 4}
	mirror := New(api, testLogger())

	mirror.AddItem(context.Background(), "local")
	api.waitForPush(t)

	require.NoError(t, mirror.ReplaceFromServer(context.Background()))

	assert.Equal(t, entity.CartItems{"server": 4}, mirror.Items())
}

func TestMirror_ReplaceFromServerPropagatesError(t *testing.T) {
	api := newFakeCartAPI()
	api.fetchErr = errors.New("fetch failed")
	mirror := New(api, testLogger())

	mirror.SetQuantity(context.Background(), "p1", 2)
	api.waitForPush(t)

	require.Error(t, mirror.ReplaceFromServer(context.Background()))

	// Failed fetch leaves the mirror untouched.
	assert.Equal(t, entity.CartItems{"p1": 2}, mirror.Items())
}

func TestMirror_AmountFloorsToTwoDecimals(t *testing.T) {
	api := newFakeCartAPI()
	mirror := New(api, testLogger())

	mirror.SetQuantity(context.Background(), "p1", 3)
	api.waitForPush(t)

	catalog := map[string]*entity.Product{
		"p1": {OfferPrice: 9.999},
	}

	// floor(29.997 * 100) / 100
	assert.InDelta(t, 29.99, mirror.Amount(catalog), 1e-9)
}

func TestMirror_AmountIgnoresUnknownProducts(t *testing.T) {
	api := newFakeCartAPI()
	mirror := New(api, testLogger())

	mirror.SetQuantity(context.Background(), "known", 2)
	api.waitForPush(t)
	mirror.SetQuantity(context.Background(), "unknown", 5)
	api.waitForPush(t)

	catalog := map[string]*entity.Product{
		"known": {OfferPrice: 10},
	}

	assert.InDelta(t, 20.0, mirror.Amount(catalog), 1e-9)
}
