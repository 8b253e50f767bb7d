// Package reminder schedules one-shot event reminders on an in-process cron.
package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crm/config"
	"crm/internal/domain/lifecycle"
	"crm/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// defaultMinDelay is how far in the future a reminder whose instant has
// already passed is moved.
const defaultMinDelay = time.Second

// oneShot is a cron.Schedule that activates exactly once.
type oneShot struct {
	at time.Time
}

func (s oneShot) Next(t time.Time) time.Time {
	if s.at.After(t) {
		return s.at
	}

	return time.Time{}
}

// Params defines the dependencies of the scheduler
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// Scheduler implements service.ReminderScheduler. Fired reminders are handed
// to the EventPublisher; recurring maintenance jobs share the same cron.
type Scheduler struct {
	cron      *cron.Cron
	publisher service.EventPublisher
	logger    *slog.Logger
	baseCtx   context.Context
	now       func() time.Time
	minDelay  time.Duration

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// NewScheduler creates the cron scheduler and ties it to the fx lifecycle
func NewScheduler(params Params) *Scheduler {
	s := newScheduler(params.Ctx, params.Config.Reminder.Location(), params.Publisher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})

	return s
}

func newScheduler(ctx context.Context, loc *time.Location, publisher service.EventPublisher, logger *slog.Logger) *Scheduler {
	cronLogger := &slogCronLogger{logger: logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		publisher: publisher,
		logger:    logger,
		baseCtx:   ctx,
		now:       time.Now,
		minDelay:  defaultMinDelay,
		entries:   make(map[string]cron.EntryID),
	}
}

// Start runs the cron loop in the background
func (s *Scheduler) Start() {
	s.logger.Info("Starting reminder scheduler")
	s.cron.Start()
}

// Stop halts the cron loop and waits for running jobs until ctx expires
func (s *Scheduler) Stop(ctx context.Context) error {
	s.logger.Info("Stopping reminder scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "reminder jobs still running")
	}
}

// Schedule registers a one-shot reminder
func (s *Scheduler) Schedule(_ context.Context, reminder *service.Reminder) (string, error) {
	if reminder == nil {
		return "", errors.New("reminder is required")
	}
	if reminder.FireAt.IsZero() {
		return "", errors.New("reminder fire instant is required")
	}

	id := reminder.ID
	if id == "" {
		id = uuid.NewString()
	}

	at := reminder.FireAt
	if earliest := s.now().Add(s.minDelay); at.Before(earliest) {
		at = earliest
	}

	fired := *reminder
	fired.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	if previous, ok := s.entries[id]; ok {
		s.cron.Remove(previous)
	}
	s.entries[id] = s.cron.Schedule(oneShot{at: at}, cron.FuncJob(func() {
		s.fire(&fired)
	}))

	s.logger.Debug("Reminder scheduled",
		slog.String("reminder_id", id),
		slog.String("event_id", reminder.EventID),
		slog.Time("fire_at", at),
	)

	return id, nil
}

// Cancel removes a scheduled reminder
func (s *Scheduler) Cancel(_ context.Context, id string) error {
	s.mu.Lock()
	entryID, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()

	if !ok {
		return errors.Wrapf(service.ErrReminderNotFound, "reminder %s", id)
	}

	s.cron.Remove(entryID)
	s.logger.Debug("Reminder cancelled", slog.String("reminder_id", id))

	return nil
}

// Pending returns the number of reminders waiting to fire
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// AddRecurring registers job under a standard cron spec (descriptors such as
// "@every 1h" are accepted)
func (s *Scheduler) AddRecurring(spec, name string, job func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(s.baseCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := job(ctx); err != nil {
			s.logger.Error("Recurring job failed",
				slog.String("job", name),
				slog.Any("error", err),
			)
		}
	})
	if err != nil {
		return errors.Wrapf(err, "invalid schedule %q for job %s", spec, name)
	}

	return nil
}

func (s *Scheduler) fire(reminder *service.Reminder) {
	s.mu.Lock()
	entryID, ok := s.entries[reminder.ID]
	delete(s.entries, reminder.ID)
	s.mu.Unlock()

	if !ok {
		// Cancelled between activation and now.
		return
	}
	s.cron.Remove(entryID)

	ctx, cancel := context.WithTimeout(s.baseCtx, lifecycle.DefaultTimeout)
	defer cancel()

	event := &service.ReminderEvent{
		RequestID:  uuid.NewString(),
		ReminderID: reminder.ID,
		EventID:    reminder.EventID,
		UserID:     reminder.UserID,
		Title:      reminder.Title,
		Body:       reminder.Body,
		FireAt:     reminder.FireAt,
	}

	if err := s.publisher.PublishReminderEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish reminder",
			slog.String("reminder_id", reminder.ID),
			slog.String("event_id", reminder.EventID),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Reminder fired",
		slog.String("reminder_id", reminder.ID),
		slog.String("event_id", reminder.EventID),
	)
}

// slogCronLogger adapts slog to cron.Logger
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
