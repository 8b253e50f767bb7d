package impl

import (
	"context"
	"log/slog"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

// firebaseBatchSize is the Cloud Messaging multicast limit
const firebaseBatchSize = 500

type reminderDeliveryService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushService      service.PushService
	logger           *slog.Logger
}

// NewReminderDeliveryService creates the handler that pushes fired reminders
func NewReminderDeliveryService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	pushService service.PushService,
	logger *slog.Logger,
) usecase.ReminderDeliveryUsecase {
	return &reminderDeliveryService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		pushService:      pushService,
		logger:           logger,
	}
}

// HandleReminder sends a fired reminder to every active device of its owner.
// Reminders whose notification record is gone or no longer pending are dropped.
func (s *reminderDeliveryService) HandleReminder(ctx context.Context, event *service.ReminderEvent) error {
	logger := s.logger.With(
		slog.String("reminder_id", event.ReminderID),
		slog.String("event_id", event.EventID),
	)

	deliver, err := s.stillPending(ctx, event)
	if err != nil {
		return err
	}
	if !deliver {
		logger.Info("Reminder no longer pending, skipping")

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to find active devices by user")
	}
	if len(devices) == 0 {
		logger.Info("User has no active devices")

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"type":        "event_reminder",
		"event_id":    event.EventID,
		"reminder_id": event.ReminderID,
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)

	for start := 0; start < len(tokens); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(tokens))
		batch := tokens[start:end]

		successCount, failureCount, batchInvalid, err := s.pushService.SendBatchNotification(ctx, batch, event.Title, event.Body, data)
		if err != nil {
			// Keep going with the other batches
			logger.Error("Failed to send reminder batch", slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateDevicesByToken(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid devices", slog.Any("error", err))
		}
	}

	logger.Info("Reminder delivered",
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if totalSent == 0 && totalFailed > 0 && len(invalidTokens) < totalFailed {
		return errors.Errorf("reminder %s not delivered to any device", event.ReminderID)
	}

	return nil
}

func (s *reminderDeliveryService) stillPending(ctx context.Context, event *service.ReminderEvent) (bool, error) {
	notifications, err := s.notificationRepo.FindNotificationsByEvent(ctx, event.EventID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find notification records of event")
	}

	for _, notification := range notifications {
		if notification.Status == entity.NotificationStatusPending && notification.ReminderID == event.ReminderID {
			return true, nil
		}
	}

	return false, nil
}
