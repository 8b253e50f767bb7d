package pubsub

import (
	"context"
	"log/slog"

	"crm/internal/domain/service"
)

// directPublisher delivers reminders in-process, for single-binary setups
// that run without a worker
type directPublisher struct {
	handler service.ReminderHandler
	logger  *slog.Logger
}

// NewDirectPublisher creates a publisher that calls handler synchronously
func NewDirectPublisher(handler service.ReminderHandler, logger *slog.Logger) service.EventPublisher {
	return &directPublisher{
		handler: handler,
		logger:  logger,
	}
}

func (p *directPublisher) PublishReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	p.logger.Debug("[DirectPubSub] Delivering reminder",
		slog.String("reminder_id", event.ReminderID),
	)

	return p.handler.HandleReminder(ctx, event)
}

func (p *directPublisher) Close() error {
	return nil
}
