package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/event-ticketing/internal/events"
)

// StartNotificationWorker subscribes logging notifiers for domain
// events. A real deployment would fan these out to email or webhooks.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, ev events.Event) error {
		logger.Info("user registered", zap.Any("payload", ev.Payload))
		return nil
	})
	dispatcher.Subscribe(events.EventEventCreated, func(_ context.Context, ev events.Event) error {
		logger.Info("event created", zap.Int64("actor_id", ev.ActorID), zap.Any("payload", ev.Payload))
		return nil
	})
	dispatcher.Subscribe(events.EventTicketIssued, func(_ context.Context, ev events.Event) error {
		logger.Info("ticket issued", zap.Int64("actor_id", ev.ActorID), zap.Any("payload", ev.Payload))
		return nil
	})
	dispatcher.Subscribe(events.EventTicketPaid, func(_ context.Context, ev events.Event) error {
		logger.Info("ticket paid", zap.Any("payload", ev.Payload))
		return nil
	})
}
