package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/domain/snapshot"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	eventRepo        repository.EventRepository
	notificationRepo repository.NotificationRepository
	scheduler        service.ReminderScheduler
	calendar         service.CalendarEncoder
	logger           *slog.Logger

	loc          *time.Location
	createdTitle string
	updatedTitle string
	now          func() time.Time
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	NotificationRepo repository.NotificationRepository
	Scheduler        service.ReminderScheduler
	Calendar         service.CalendarEncoder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:        params.EventRepo,
		notificationRepo: params.NotificationRepo,
		scheduler:        params.Scheduler,
		calendar:         params.Calendar,
		logger:           params.Logger,
		loc:              params.Config.Reminder.Location(),
		createdTitle:     params.Config.Reminder.CreatedTitle,
		updatedTitle:     params.Config.Reminder.UpdatedTitle,
		now:              time.Now,
	}
}

// CreateEvent stores a new event together with its reminder and notification record
func (s *eventService) CreateEvent(ctx context.Context, userID string, input *usecase.EventInput) (*entity.Event, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	event := &entity.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Date:        strings.TrimSpace(input.Date),
		UserID:      userID,
		ClientID:    input.ClientID,
		CreatedAt:   s.now(),
	}
	if event.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	clock, err := s.normalizeSchedule(event.Date, input.Time)
	if err != nil {
		return nil, err
	}
	event.Time = clock

	if event.Time != "" {
		// A failed schedule leaves the event without reminder.
		event.ReminderID = s.scheduleReminder(ctx, logger, event, s.createdTitle)
	}

	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		s.cancelReminder(ctx, logger, event.ReminderID)

		return nil, errors.Wrap(err, "failed to create event")
	}

	notification := &entity.Notification{
		EventID:     event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		UserID:      userID,
		Status:      entity.NotificationStatusPending,
		ReminderID:  event.ReminderID,
		CreatedAt:   s.now(),
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		// The two writes are not atomic; the event is kept.
		logger.Error("Failed to create notification record",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}

	logger.Info("Event created",
		slog.String("event_id", event.ID),
		slog.String("reminder_id", event.ReminderID),
	)

	return event, nil
}

// GetEvent returns an event owned by userID
func (s *eventService) GetEvent(ctx context.Context, userID, eventID string) (*entity.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	if event.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return event, nil
}

// ListEvents returns all events of the user, or the ones of a day
func (s *eventService) ListEvents(ctx context.Context, userID, date string) ([]*entity.Event, error) {
	if date == "" {
		events, err := s.eventRepo.FindEventsByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find events by user")
		}

		return events, nil
	}

	if err := validateDate(date); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindEventsByDate(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events by date")
	}

	return events, nil
}

// UpdateEvent applies a patch and replaces the reminder when the schedule changes
func (s *eventService) UpdateEvent(ctx context.Context, userID, eventID string, patch *entity.EventPatch) (*entity.Event, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	event, err := s.GetEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title cannot be empty")
	}
	if patch.Time != nil {
		clock, err := s.normalizeSchedule(valueOr(patch.Date, event.Date), *patch.Time)
		if err != nil {
			return nil, err
		}
		patch.Time = &clock
	} else if patch.Date != nil {
		if _, err := s.normalizeSchedule(*patch.Date, event.Time); err != nil {
			return nil, err
		}
	}

	reschedule := patch.ChangesSchedule(event)
	previousReminder := event.ReminderID

	patch.Apply(event)

	if reschedule {
		// The old reminder may already have fired or been lost on restart.
		s.cancelReminder(ctx, logger, previousReminder)
		event.ReminderID = ""

		if event.Time != "" {
			event.ReminderID = s.scheduleReminder(ctx, logger, event, s.updatedTitle)
		}
	}

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to update event")
	}

	s.refreshMirror(ctx, logger, event)

	logger.Info("Event updated",
		slog.String("event_id", event.ID),
		slog.Bool("rescheduled", reschedule),
		slog.String("reminder_id", event.ReminderID),
	)

	return event, nil
}

// DeleteEvent removes an event, its reminder and its notification records
func (s *eventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	event, err := s.GetEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrEventNotFound) {
			return nil
		}

		return err
	}

	if event.HasReminder() {
		s.cancelReminder(ctx, logger, event.ReminderID)
	}

	notifications, err := s.notificationRepo.FindNotificationsByEvent(ctx, event.ID)
	if err != nil {
		logger.Error("Failed to find notification records of event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
	for _, notification := range notifications {
		if notification.ReminderID != "" && notification.ReminderID != event.ReminderID {
			s.cancelReminder(ctx, logger, notification.ReminderID)
		}

		err := s.notificationRepo.DeleteNotification(ctx, notification.ID)
		if err != nil && !errors.Is(err, repository.ErrNotificationNotFound) {
			logger.Error("Failed to delete notification record",
				slog.String("event_id", event.ID),
				slog.String("notification_id", notification.ID),
				slog.Any("error", err),
			)
		}
	}

	if err := s.eventRepo.DeleteEvent(ctx, event.ID); err != nil && !errors.Is(err, repository.ErrEventNotFound) {
		return errors.Wrap(err, "failed to delete event")
	}

	logger.Info("Event deleted", slog.String("event_id", event.ID))

	return nil
}

// WatchEventsByDate opens a live feed of a day's events
func (s *eventService) WatchEventsByDate(ctx context.Context, userID, date string) (snapshot.Iterator[*entity.Event], error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	it, err := s.eventRepo.WatchEventsByDate(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch events by date")
	}

	return it, nil
}

// ExportCalendar renders every event of the user as iCalendar
func (s *eventService) ExportCalendar(ctx context.Context, userID string) ([]byte, error) {
	events, err := s.eventRepo.FindEventsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events by user")
	}

	data, err := s.calendar.EncodeEvents(events, s.loc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode calendar")
	}

	return data, nil
}

// normalizeSchedule validates the day and returns the zero-padded clock.
// An empty clock means the event has no reminder.
func (s *eventService) normalizeSchedule(date, clock string) (string, error) {
	if err := validateDate(date); err != nil {
		return "", err
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return "", nil
	}

	normalized, err := entity.NormalizeClock(clock)
	if err != nil {
		return "", domainerrors.ErrInvalidSchedule.WithDetails(err.Error())
	}

	return normalized, nil
}

func (s *eventService) scheduleReminder(ctx context.Context, logger *slog.Logger, event *entity.Event, title string) string {
	fireAt, err := event.FireAt(s.loc)
	if err != nil {
		logger.Warn("Cannot compute reminder instant",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)

		return ""
	}

	id, err := s.scheduler.Schedule(ctx, &service.Reminder{
		UserID:  event.UserID,
		EventID: event.ID,
		Title:   title,
		Body:    event.Title,
		FireAt:  fireAt,
	})
	if err != nil {
		logger.Warn("Failed to schedule reminder, event saved without it",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)

		return ""
	}

	return id
}

func (s *eventService) cancelReminder(ctx context.Context, logger *slog.Logger, reminderID string) {
	if reminderID == "" {
		return
	}

	err := s.scheduler.Cancel(ctx, reminderID)
	if err != nil && !errors.Is(err, service.ErrReminderNotFound) {
		logger.Warn("Failed to cancel reminder",
			slog.String("reminder_id", reminderID),
			slog.Any("error", err),
		)
	}
}

func (s *eventService) refreshMirror(ctx context.Context, logger *slog.Logger, event *entity.Event) {
	notifications, err := s.notificationRepo.FindNotificationsByEvent(ctx, event.ID)
	if err != nil {
		logger.Warn("Failed to find notification records of event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)

		return
	}

	mirror := entity.MirrorOf(event)
	for _, notification := range notifications {
		if err := s.notificationRepo.UpdateNotificationMirror(ctx, notification.ID, mirror); err != nil {
			logger.Warn("Failed to refresh notification record",
				slog.String("notification_id", notification.ID),
				slog.Any("error", err),
			)
		}
	}
}

func validateDate(date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return domainerrors.ErrInvalidSchedule.WithDetails("date must be YYYY-MM-DD")
	}

	return nil
}

func valueOr(value *string, fallback string) string {
	if value != nil {
		return *value
	}

	return fallback
}
