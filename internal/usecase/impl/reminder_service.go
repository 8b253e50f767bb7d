package impl

import (
	"context"
	"log/slog"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reminderService struct {
	eventRepo        repository.EventRepository
	notificationRepo repository.NotificationRepository
	scheduler        service.ReminderScheduler
	logger           *slog.Logger
	loc              *time.Location
	title            string
	now              func() time.Time
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	NotificationRepo repository.NotificationRepository
	Scheduler        service.ReminderScheduler
	Config           *config.Config
	Logger           *slog.Logger
}

// NewReminderService creates the reminder maintenance service
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		eventRepo:        params.EventRepo,
		notificationRepo: params.NotificationRepo,
		scheduler:        params.Scheduler,
		logger:           params.Logger,
		loc:              params.Config.Reminder.Location(),
		title:            params.Config.Reminder.CreatedTitle,
		now:              time.Now,
	}
}

// RestoreReminders puts pending future reminders back on the scheduler
func (s *reminderService) RestoreReminders(ctx context.Context) (int, error) {
	pending, err := s.notificationRepo.FindNotificationsByStatus(ctx, entity.NotificationStatusPending)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find pending notifications")
	}

	now := s.now()
	restored := 0

	for _, notification := range pending {
		if notification.ReminderID == "" || notification.Time == "" {
			continue
		}

		fireAt, err := entity.ScheduleInstant(notification.Date, notification.Time, s.loc)
		if err != nil {
			s.logger.Warn("Skipping notification with invalid schedule",
				slog.String("notification_id", notification.ID),
				slog.Any("error", err),
			)

			continue
		}
		if !fireAt.After(now) {
			continue
		}

		if _, err := s.scheduler.Schedule(ctx, &service.Reminder{
			ID:      notification.ReminderID,
			UserID:  notification.UserID,
			EventID: notification.EventID,
			Title:   s.title,
			Body:    notification.Title,
			FireAt:  fireAt,
		}); err != nil {
			s.logger.Warn("Failed to restore reminder",
				slog.String("reminder_id", notification.ReminderID),
				slog.Any("error", err),
			)

			continue
		}
		restored++
	}

	s.logger.Info("Reminders restored", slog.Int("count", restored))

	return restored, nil
}

// SweepOrphans removes notification records whose event was deleted
func (s *reminderService) SweepOrphans(ctx context.Context) (int, error) {
	notifications, err := s.notificationRepo.FindAllNotifications(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find notifications")
	}

	// Events already checked in this sweep, by ID.
	alive := make(map[string]bool)
	removed := 0

	for _, notification := range notifications {
		exists, checked := alive[notification.EventID]
		if !checked {
			_, err := s.eventRepo.FindEventByID(ctx, notification.EventID)
			switch {
			case err == nil:
				exists = true
			case errors.Is(err, repository.ErrEventNotFound):
				exists = false
			default:
				return removed, errors.Wrap(err, "failed to find event by ID")
			}
			alive[notification.EventID] = exists
		}
		if exists {
			continue
		}

		if notification.ReminderID != "" {
			if err := s.scheduler.Cancel(ctx, notification.ReminderID); err != nil && !errors.Is(err, service.ErrReminderNotFound) {
				s.logger.Warn("Failed to cancel orphan reminder",
					slog.String("reminder_id", notification.ReminderID),
					slog.Any("error", err),
				)
			}
		}

		err := s.notificationRepo.DeleteNotification(ctx, notification.ID)
		if err != nil && !errors.Is(err, repository.ErrNotificationNotFound) {
			s.logger.Warn("Failed to delete orphan notification",
				slog.String("notification_id", notification.ID),
				slog.Any("error", err),
			)

			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("Orphan notifications removed", slog.Int("count", removed))
	}

	return removed, nil
}
