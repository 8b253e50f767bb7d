package reminder

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"crm/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []*service.ReminderEvent
	fired  chan struct{}
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{fired: make(chan struct{}, 10)}
}

func (p *capturePublisher) PublishReminderEvent(_ context.Context, event *service.ReminderEvent) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	p.fired <- struct{}{}

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) published() []*service.ReminderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.ReminderEvent(nil), p.events...)
}

func newTestScheduler(t *testing.T) (*Scheduler, *capturePublisher) {
	t.Helper()

	publisher := newCapturePublisher()
	s := newScheduler(context.Background(), time.UTC, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.minDelay = 10 * time.Millisecond
	s.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	})

	return s, publisher
}

func waitFired(t *testing.T, p *capturePublisher) {
	t.Helper()

	select {
	case <-p.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("reminder did not fire")
	}
}

func TestOneShot_Next(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	schedule := oneShot{at: at}

	assert.Equal(t, at, schedule.Next(at.Add(-time.Minute)))
	assert.True(t, schedule.Next(at).IsZero())
	assert.True(t, schedule.Next(at.Add(time.Minute)).IsZero())
}

func TestScheduler_FiresAndPublishes(t *testing.T) {
	s, publisher := newTestScheduler(t)
	fireAt := time.Now().Add(50 * time.Millisecond)

	id, err := s.Schedule(context.Background(), &service.Reminder{
		UserID:  "user-1",
		EventID: "evt-1",
		Title:   "Tienes un evento pendiente",
		Body:    "Demo",
		FireAt:  fireAt,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, s.Pending())

	waitFired(t, publisher)

	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ReminderID)
	assert.Equal(t, "evt-1", events[0].EventID)
	assert.Equal(t, "user-1", events[0].UserID)
	assert.Equal(t, "Demo", events[0].Body)
	assert.NotEmpty(t, events[0].RequestID)
	assert.True(t, events[0].FireAt.Equal(fireAt))

	require.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_PastInstantFiresSoon(t *testing.T) {
	s, publisher := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), &service.Reminder{
		EventID: "evt-1",
		FireAt:  time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	waitFired(t, publisher)
}

func TestScheduler_KeepsCallerID(t *testing.T) {
	s, _ := newTestScheduler(t)

	id, err := s.Schedule(context.Background(), &service.Reminder{
		ID:     "restored-id",
		FireAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "restored-id", id)

	// Scheduling the same ID again replaces the earlier job.
	_, err = s.Schedule(context.Background(), &service.Reminder{
		ID:     "restored-id",
		FireAt: time.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Pending())
}

func TestScheduler_Cancel(t *testing.T) {
	s, publisher := newTestScheduler(t)

	id, err := s.Schedule(context.Background(), &service.Reminder{
		EventID: "evt-1",
		FireAt:  time.Now().Add(100 * time.Millisecond),
	})
	require.NoError(t, err)

	require.NoError(t, s.Cancel(context.Background(), id))
	assert.Equal(t, 0, s.Pending())

	select {
	case <-publisher.fired:
		t.Fatal("cancelled reminder fired")
	case <-time.After(300 * time.Millisecond):
	}

	err = s.Cancel(context.Background(), id)
	assert.True(t, errors.Is(err, service.ErrReminderNotFound))
}

func TestScheduler_ScheduleValidation(t *testing.T) {
	s, _ := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), nil)
	assert.Error(t, err)

	_, err = s.Schedule(context.Background(), &service.Reminder{EventID: "evt-1"})
	assert.Error(t, err)
}

func TestScheduler_AddRecurring(t *testing.T) {
	s, _ := newTestScheduler(t)

	assert.Error(t, s.AddRecurring("not a spec", "sweep", func(context.Context) error { return nil }))

	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddRecurring("@every 1s", "sweep", func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}

		return errors.New("logged, not fatal")
	}))

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("recurring job did not run")
	}
}
