package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
)

// OrderEventHandler consumes one decoded order event. done must be invoked
// exactly once; a nil error acks the underlying message, anything else nacks
// it for redelivery.
type OrderEventHandler func(ctx context.Context, event *service.OrderEvent, done func(error))

// OrderEventSubscriber is the pull side of the order transport. It exists so
// the batch worker, not the broker, decides when a message settles: events
// stay outstanding while they sit in the batch window.
type OrderEventSubscriber struct {
	client     *pubsub.Client
	subscriber *pubsub.Subscriber
	logger     *slog.Logger
}

// NewOrderEventSubscriber creates a pull subscriber on the given subscription.
func NewOrderEventSubscriber(ctx context.Context, projectID, subscriptionID string, logger *slog.Logger) (*OrderEventSubscriber, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	subscriber := client.Subscriber(subscriptionID)

	logger.Info("Google Pub/Sub subscriber initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &OrderEventSubscriber{
		client:     client,
		subscriber: subscriber,
		logger:     logger,
	}, nil
}

// Receive pulls messages until ctx is cancelled, handing each decoded event
// to the handler. Messages that fail to decode are acked and dropped:
// redelivering a malformed payload can never succeed.
func (s *OrderEventSubscriber) Receive(ctx context.Context, handler OrderEventHandler) error {
	err := s.subscriber.Receive(ctx, func(msgCtx context.Context, msg *pubsub.Message) {
		var event service.OrderEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.logger.Error("[GooglePubSub] Dropping undecodable message",
				slog.String("message_id", msg.ID),
				slog.String("error", err.Error()),
			)
			msg.Ack()

			return
		}

		handler(msgCtx, &event, func(handleErr error) {
			if handleErr != nil {
				s.logger.Warn("[GooglePubSub] Nacking order event for redelivery",
					slog.String("idempotency_key", event.IdempotencyKey),
					slog.String("error", handleErr.Error()),
				)
				msg.Nack()

				return
			}
			msg.Ack()
		})
	})
	if err != nil {
		return errors.Wrap(err, "pubsub receive loop failed")
	}

	return nil
}

// Close releases Pub/Sub client resources
func (s *OrderEventSubscriber) Close() error {
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}

	return nil
}
