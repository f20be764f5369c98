package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderSubmission struct {
	event *service.OrderEvent
	done  func(error)
}

// orderBatchService implements the OrderBatchUsecase interface. Events
// accumulate in a window that flushes at maxSize or maxWait, whichever is
// hit first; a flush failure nacks every event in the window so the
// transport redelivers them.
type orderBatchService struct {
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
	maxSize     int
	maxWait     time.Duration
	submissions chan orderSubmission
}

// NewOrderBatchService is the constructor for orderBatchService.
func NewOrderBatchService(
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
	maxSize int,
	maxWait time.Duration,
) usecase.OrderBatchUsecase {
	if maxSize < 1 {
		maxSize = 1
	}
	if maxWait <= 0 {
		maxWait = 5 * time.Second
	}

	return &orderBatchService{
		orderRepo:   orderRepo,
		logger:      logger,
		maxSize:     maxSize,
		maxWait:     maxWait,
		submissions: make(chan orderSubmission),
	}
}

// Submit hands one event to the flush loop. It blocks until the loop takes
// the event or ctx is cancelled.
func (srv *orderBatchService) Submit(ctx context.Context, event *service.OrderEvent, done func(error)) error {
	if done == nil {
		done = func(error) {}
	}

	select {
	case srv.submissions <- orderSubmission{event: event, done: done}:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "batcher is not accepting events")
	}
}

// Run owns the window. A timer starts when the first event of a window
// arrives, so a lone event waits at most maxWait before it is persisted.
func (srv *orderBatchService) Run(ctx context.Context) error {
	pending := make([]orderSubmission, 0, srv.maxSize)

	timer := time.NewTimer(srv.maxWait)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case sub := <-srv.submissions:
			if len(pending) == 0 {
				timer.Reset(srv.maxWait)
			}
			pending = append(pending, sub)

			if len(pending) >= srv.maxSize {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				pending = srv.flush(ctx, pending)
			}

		case <-timer.C:
			pending = srv.flush(ctx, pending)

		case <-ctx.Done():
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			srv.flush(ctx, pending)

			return nil
		}
	}
}

// flush persists the window as one bulk insert and settles every
// submission. It always returns an empty reusable slice.
func (srv *orderBatchService) flush(ctx context.Context, pending []orderSubmission) []orderSubmission {
	if len(pending) == 0 {
		return pending
	}

	// The loop context may already be cancelled during shutdown; the final
	// window still gets a bounded chance to land.
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	orders := make([]*entity.Order, 0, len(pending))
	valid := make([]orderSubmission, 0, len(pending))

	for _, sub := range pending {
		order, err := orderFromEvent(sub.event)
		if err != nil {
			// A malformed event can never succeed; redelivering it would
			// just loop. Ack it and keep the failure in the logs.
			srv.logger.Error("dropping malformed order event",
				"idempotencyKey", sub.event.IdempotencyKey, "error", err)
			sub.done(nil)

			continue
		}

		orders = append(orders, order)
		valid = append(valid, sub)
	}

	if len(orders) == 0 {
		return pending[:0]
	}

	inserted, err := srv.orderRepo.CreateBatch(flushCtx, orders)
	if err != nil {
		srv.logger.Error("batch insert failed, nacking window",
			"size", len(orders), "error", err)

		for _, sub := range valid {
			sub.done(errors.Wrap(err, "failed to persist order batch"))
		}

		return pending[:0]
	}

	srv.logger.Info("order batch persisted",
		"size", len(orders), "inserted", inserted, "deduplicated", len(orders)-inserted)

	for _, sub := range valid {
		sub.done(nil)
	}

	return pending[:0]
}

// orderFromEvent maps a transport event to its persistent form.
func orderFromEvent(event *service.OrderEvent) (*entity.Order, error) {
	if event.UserID == "" || len(event.Items) == 0 {
		return nil, errors.New("event is missing user or items")
	}
	if event.IdempotencyKey == "" {
		return nil, errors.New("event is missing idempotency key")
	}

	addressID, err := uuid.Parse(event.AddressID)
	if err != nil {
		return nil, errors.Wrap(err, "event carries an unparseable address id")
	}

	status := entity.OrderStatus(event.Status)
	if status == "" {
		status = entity.OrderStatusPlaced
	}

	placedAt := event.PlacedAt
	if placedAt.IsZero() {
		placedAt = time.Now().UTC()
	}

	return &entity.Order{
		ID:             uuid.New(),
		UserID:         event.UserID,
		Items:          event.Items,
		Amount:         event.Amount,
		AddressID:      addressID,
		Status:         status,
		IdempotencyKey: event.IdempotencyKey,
		PlacedAt:       placedAt,
	}, nil
}
