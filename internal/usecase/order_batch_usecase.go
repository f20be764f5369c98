package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// OrderBatchUsecase coalesces decoded order events into bulk inserts. The
// window closes when it reaches the configured size or age, whichever comes
// first.
type OrderBatchUsecase interface {
	// Submit enqueues one event. done is called exactly once with the
	// outcome of the flush that included the event; the transport uses it
	// to ack or nack the underlying message.
	Submit(ctx context.Context, event *service.OrderEvent, done func(error)) error

	// Run drives the flush loop until ctx is cancelled, then flushes the
	// pending window before returning.
	Run(ctx context.Context) error
}
