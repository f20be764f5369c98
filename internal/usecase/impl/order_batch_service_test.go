package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// batchFixtures holds all test dependencies for order batch tests.
type batchFixtures struct {
	service   usecase.OrderBatchUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestBatchService(t *testing.T, maxSize int, maxWait time.Duration) batchFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOrderBatchService(orderRepo, logger, maxSize, maxWait)

	return batchFixtures{
		service:   svc,
		orderRepo: orderRepo,
	}
}

func testOrderEvent() *service.OrderEvent {
	return &service.OrderEvent{
		IdempotencyKey: uuid.NewString(),
		UserID:         "u1",
		Items:          []entity.OrderItem{{ProductID: uuid.NewString(), Quantity: 1}},
		Amount:         102,
		AddressID:      uuid.NewString(),
		Status:         string(entity.OrderStatusPlaced),
		PlacedAt:       time.Now().UTC(),
	}
}

// collector tracks per-event settlement outcomes.
type collector struct {
	mu       sync.Mutex
	outcomes []error
	signal   chan struct{}
}

func newCollector() *collector {
	return &collector{signal: make(chan struct{}, 64)}
}

func (c *collector) done(err error) {
	c.mu.Lock()
	c.outcomes = append(c.outcomes, err)
	c.mu.Unlock()
	c.signal <- struct{}{}
}

func (c *collector) wait(t *testing.T, n int) []error {
	t.Helper()

	for range n {
		select {
		case <-c.signal:
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for batch settlement")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]error(nil), c.outcomes...)
}

func TestOrderBatchService_FlushBySize(t *testing.T) {
	fx := createTestBatchService(t, 3, time.Hour)

	var batched []*entity.Order
	fx.orderRepo.EXPECT().
		CreateBatch(mock.Anything, mock.AnythingOfType("[]*entity.Order")).
		RunAndReturn(func(_ context.Context, orders []*entity.Order) (int, error) {
			batched = orders

			return len(orders), nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = fx.service.Run(ctx)
	}()

	c := newCollector()
	for range 3 {
		require.NoError(t, fx.service.Submit(ctx, testOrderEvent(), c.done))
	}

	outcomes := c.wait(t, 3)
	for _, err := range outcomes {
		assert.NoError(t, err)
	}
	// The hour-long timer never fired: reaching the size bound alone
	// triggered the flush.
	assert.Len(t, batched, 3)

	cancel()
	wg.Wait()
}

func TestOrderBatchService_FlushByTime(t *testing.T) {
	fx := createTestBatchService(t, 100, 50*time.Millisecond)

	var batched []*entity.Order
	fx.orderRepo.EXPECT().
		CreateBatch(mock.Anything, mock.AnythingOfType("[]*entity.Order")).
		RunAndReturn(func(_ context.Context, orders []*entity.Order) (int, error) {
			batched = orders

			return len(orders), nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = fx.service.Run(ctx)
	}()

	c := newCollector()
	require.NoError(t, fx.service.Submit(ctx, testOrderEvent(), c.done))

	outcomes := c.wait(t, 1)
	require.Len(t, outcomes, 1)
	assert.NoError(t, outcomes[0])
	// A lone event well under the size bound still flushed once the
	// window aged out.
	assert.Len(t, batched, 1)

	cancel()
	wg.Wait()
}

func TestOrderBatchService_InsertFailureNacksWindow(t *testing.T) {
	fx := createTestBatchService(t, 2, time.Hour)

	fx.orderRepo.EXPECT().
		CreateBatch(mock.Anything, mock.AnythingOfType("[]*entity.Order")).
		Return(0, errors.New("connection reset"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = fx.service.Run(ctx)
	}()

	c := newCollector()
	for range 2 {
		require.NoError(t, fx.service.Submit(ctx, testOrderEvent(), c.done))
	}

	outcomes := c.wait(t, 2)
	require.Len(t, outcomes, 2)
	for _, err := range outcomes {
		assert.Error(t, err)
	}

	cancel()
	wg.Wait()
}

func TestOrderBatchService_MalformedEventAckedWithoutInsert(t *testing.T) {
	fx := createTestBatchService(t, 100, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = fx.service.Run(ctx)
	}()

	malformed := testOrderEvent()
	malformed.AddressID = "not-a-uuid"

	c := newCollector()
	require.NoError(t, fx.service.Submit(ctx, malformed, c.done))

	outcomes := c.wait(t, 1)
	require.Len(t, outcomes, 1)
	// The event is settled without error so the transport drops it, and
	// CreateBatch was never called.
	assert.NoError(t, outcomes[0])

	cancel()
	wg.Wait()
}

func TestOrderBatchService_ShutdownFlushesPendingWindow(t *testing.T) {
	fx := createTestBatchService(t, 100, time.Hour)

	var batched []*entity.Order
	fx.orderRepo.EXPECT().
		CreateBatch(mock.Anything, mock.AnythingOfType("[]*entity.Order")).
		RunAndReturn(func(_ context.Context, orders []*entity.Order) (int, error) {
			batched = orders

			return len(orders), nil
		})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = fx.service.Run(ctx)
	}()

	c := newCollector()
	require.NoError(t, fx.service.Submit(ctx, testOrderEvent(), c.done))
	require.NoError(t, fx.service.Submit(ctx, testOrderEvent(), c.done))

	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("batcher did not stop")
	}

	assert.Len(t, batched, 2)
}
