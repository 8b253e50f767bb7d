package impl

import (
	"context"
	"log/slog"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/domain/snapshot"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	eventRepo        repository.EventRepository
	scheduler        service.ReminderScheduler
	logger           *slog.Logger
	loc              *time.Location
	title            string
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	EventRepo        repository.EventRepository
	Scheduler        service.ReminderScheduler
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		eventRepo:        params.EventRepo,
		scheduler:        params.Scheduler,
		logger:           params.Logger,
		loc:              params.Config.Reminder.Location(),
		title:            params.Config.Reminder.CreatedTitle,
		now:              time.Now,
	}
}

func (s *notificationService) Today() string {
	return s.now().In(s.loc).Format(entity.DateLayout)
}

// ListNotifications retrieves the user's records, optionally only today's
func (s *notificationService) ListNotifications(ctx context.Context, userID string, todayOnly bool) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	if todayOnly {
		return entity.NotificationsOn(notifications, s.Today()), nil
	}

	return notifications, nil
}

// UpdateStatus sets the status of a record owned by userID. Leaving pending
// cancels the event's reminder; returning to pending schedules it again if
// the event is still ahead.
func (s *notificationService) UpdateStatus(ctx context.Context, userID, notificationID string, status entity.NotificationStatus) (*entity.Notification, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(string(status))
	}

	notification, err := s.findOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	if err := s.notificationRepo.UpdateNotificationStatus(ctx, notificationID, status); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to update notification status")
	}

	previous := notification.Status
	notification.Status = status

	switch {
	case previous == entity.NotificationStatusPending && !notification.IsPending():
		s.releaseReminder(ctx, notification)
	case previous != entity.NotificationStatusPending && notification.IsPending():
		s.rearmReminder(ctx, notification)
	}

	return notification, nil
}

// releaseReminder cancels the reminder of a record that is no longer pending
// and unlinks it from the event.
func (s *notificationService) releaseReminder(ctx context.Context, notification *entity.Notification) {
	if notification.ReminderID == "" {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	err := s.scheduler.Cancel(ctx, notification.ReminderID)
	if err != nil && !errors.Is(err, service.ErrReminderNotFound) {
		logger.Warn("Failed to cancel reminder",
			slog.String("reminder_id", notification.ReminderID),
			slog.Any("error", err),
		)
	}

	event, err := s.eventRepo.FindEventByID(ctx, notification.EventID)
	if err != nil {
		if !errors.Is(err, repository.ErrEventNotFound) {
			logger.Warn("Failed to find event of notification",
				slog.String("notification_id", notification.ID),
				slog.Any("error", err),
			)
		}

		return
	}
	if event.ReminderID != notification.ReminderID {
		return
	}

	event.ReminderID = ""
	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		logger.Warn("Failed to unlink reminder from event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

// rearmReminder schedules the event's reminder again for a record back in
// pending, unless the event already has one or its instant has passed.
func (s *notificationService) rearmReminder(ctx context.Context, notification *entity.Notification) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	event, err := s.eventRepo.FindEventByID(ctx, notification.EventID)
	if err != nil {
		if !errors.Is(err, repository.ErrEventNotFound) {
			logger.Warn("Failed to find event of notification",
				slog.String("notification_id", notification.ID),
				slog.Any("error", err),
			)
		}

		return
	}
	if event.HasReminder() || event.Time == "" {
		return
	}

	fireAt, err := event.FireAt(s.loc)
	if err != nil || !fireAt.After(s.now()) {
		return
	}

	id, err := s.scheduler.Schedule(ctx, &service.Reminder{
		ID:      notification.ReminderID,
		UserID:  event.UserID,
		EventID: event.ID,
		Title:   s.title,
		Body:    event.Title,
		FireAt:  fireAt,
	})
	if err != nil {
		logger.Warn("Failed to schedule reminder",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)

		return
	}

	event.ReminderID = id
	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		logger.Warn("Failed to link reminder to event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
	if err := s.notificationRepo.UpdateNotificationMirror(ctx, notification.ID, entity.MirrorOf(event)); err != nil {
		logger.Warn("Failed to refresh notification record",
			slog.String("notification_id", notification.ID),
			slog.Any("error", err),
		)
	}
	notification.ReminderID = id
}

// DeleteNotification removes a record owned by userID
func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	if _, err := s.findOwned(ctx, userID, notificationID); err != nil {
		if errors.Is(err, domainerrors.ErrNotificationNotFound) {
			return nil
		}

		return err
	}

	err := s.notificationRepo.DeleteNotification(ctx, notificationID)
	if err != nil && !errors.Is(err, repository.ErrNotificationNotFound) {
		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// WatchNotifications opens a live feed of the user's records
func (s *notificationService) WatchNotifications(ctx context.Context, userID string) (snapshot.Iterator[*entity.Notification], error) {
	it, err := s.notificationRepo.WatchNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch notifications")
	}

	return it, nil
}

func (s *notificationService) findOwned(ctx context.Context, userID, notificationID string) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	if notification.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return notification, nil
}
