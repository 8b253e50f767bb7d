package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	mockRepo "crm/internal/mocks/repository"
	mockSvc "crm/internal/mocks/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service          *eventService
	eventRepo        *mockRepo.MockEventRepository
	notificationRepo *mockRepo.MockNotificationRepository
	scheduler        *mockSvc.MockReminderScheduler
	calendar         *mockSvc.MockCalendarEncoder
	loc              *time.Location
}

func testConfig() *config.Config {
	return &config.Config{
		Reminder: &config.ReminderConfig{
			Timezone:     "America/Mexico_City",
			CreatedTitle: "Tienes un evento pendiente",
			UpdatedTitle: "Evento actualizado",
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	eventRepo := mockRepo.NewMockEventRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	scheduler := mockSvc.NewMockReminderScheduler(t)
	calendar := mockSvc.NewMockCalendarEncoder(t)
	cfg := testConfig()

	svc := NewEventService(EventServiceParams{
		EventRepo:        eventRepo,
		NotificationRepo: notificationRepo,
		Scheduler:        scheduler,
		Calendar:         calendar,
		Config:           cfg,
		Logger:           discardLogger(),
	}).(*eventService)
	svc.now = func() time.Time { return time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC) }

	return eventServiceFixtures{
		service:          svc,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
		scheduler:        scheduler,
		calendar:         calendar,
		loc:              svc.loc,
	}
}

func demoEvent() *entity.Event {
	return &entity.Event{
		ID:         "evt-1",
		Title:      "Demo",
		Date:       "2024-06-01",
		Time:       "09:00",
		UserID:     "user-1",
		ReminderID: "rem-old",
	}
}

func TestEventService_CreateEvent_SchedulesReminderAndMirror(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	var scheduled *service.Reminder
	fx.scheduler.EXPECT().
		Schedule(ctx, mock.AnythingOfType("*service.Reminder")).
		Run(func(_ context.Context, reminder *service.Reminder) { scheduled = reminder }).
		Return("rem-1", nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(nil)

	var mirror *entity.Notification
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { mirror = n }).
		Return(nil)

	event, err := fx.service.CreateEvent(ctx, "user-1", &usecase.EventInput{
		Title: "Demo",
		Date:  "2024-06-01",
		Time:  "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "rem-1", event.ReminderID)
	assert.Equal(t, "user-1", event.UserID)
	assert.NotEmpty(t, event.ID)

	require.NotNil(t, scheduled)
	assert.Equal(t, "Tienes un evento pendiente", scheduled.Title)
	assert.Equal(t, "Demo", scheduled.Body)
	assert.Equal(t, event.ID, scheduled.EventID)
	assert.True(t, scheduled.FireAt.Equal(time.Date(2024, 6, 1, 9, 0, 0, 0, fx.loc)))

	require.NotNil(t, mirror)
	assert.Equal(t, entity.NotificationStatusPending, mirror.Status)
	assert.Equal(t, event.ID, mirror.EventID)
	assert.Equal(t, "rem-1", mirror.ReminderID)
	assert.Equal(t, "Demo", mirror.Title)
}

func TestEventService_CreateEvent_NormalizesUnpaddedTime(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.scheduler.EXPECT().Schedule(ctx, mock.Anything).Return("rem-1", nil)
	fx.eventRepo.EXPECT().CreateEvent(ctx, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	event, err := fx.service.CreateEvent(ctx, "user-1", &usecase.EventInput{Title: "Demo", Date: "2024-06-01", Time: "9:5"})
	require.NoError(t, err)
	assert.Equal(t, "09:05", event.Time)
}

func TestEventService_CreateEvent_WithoutTimeHasNoReminder(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().CreateEvent(ctx, mock.Anything).Return(nil)

	var mirror *entity.Notification
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { mirror = n }).
		Return(nil)

	event, err := fx.service.CreateEvent(ctx, "user-1", &usecase.EventInput{Title: "Cumpleaños", Date: "2024-06-01"})
	require.NoError(t, err)
	assert.False(t, event.HasReminder())
	require.NotNil(t, mirror)
	assert.Empty(t, mirror.ReminderID)
}

func TestEventService_CreateEvent_ScheduleFailureKeepsEvent(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.scheduler.EXPECT().Schedule(ctx, mock.Anything).Return("", errors.New("scheduler down"))
	fx.eventRepo.EXPECT().CreateEvent(ctx, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	event, err := fx.service.CreateEvent(ctx, "user-1", &usecase.EventInput{Title: "Demo", Date: "2024-06-01", Time: "09:00"})
	require.NoError(t, err)
	assert.Empty(t, event.ReminderID)
}

func TestEventService_CreateEvent_StoreFailureCancelsReminder(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.scheduler.EXPECT().Schedule(ctx, mock.Anything).Return("rem-1", nil)
	fx.eventRepo.EXPECT().CreateEvent(ctx, mock.Anything).Return(errors.New("unavailable"))
	fx.scheduler.EXPECT().Cancel(ctx, "rem-1").Return(nil)

	_, err := fx.service.CreateEvent(ctx, "user-1", &usecase.EventInput{Title: "Demo", Date: "2024-06-01", Time: "09:00"})
	assert.Error(t, err)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.EventInput
		want  error
	}{
		{"missing title", &usecase.EventInput{Title: "  ", Date: "2024-06-01"}, domainerrors.ErrValidationFailed},
		{"bad date", &usecase.EventInput{Title: "Demo", Date: "01/06/2024"}, domainerrors.ErrInvalidSchedule},
		{"bad time", &usecase.EventInput{Title: "Demo", Date: "2024-06-01", Time: "25:00"}, domainerrors.ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEventService(t)

			_, err := fx.service.CreateEvent(context.Background(), "user-1", tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEventService_UpdateEvent_TimeChangeReschedules(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(demoEvent(), nil)
	fx.scheduler.EXPECT().Cancel(ctx, "rem-old").Return(nil)

	var scheduled *service.Reminder
	fx.scheduler.EXPECT().
		Schedule(ctx, mock.Anything).
		Run(func(_ context.Context, reminder *service.Reminder) { scheduled = reminder }).
		Return("rem-new", nil)

	fx.eventRepo.EXPECT().
		UpdateEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.ReminderID == "rem-new" && e.Time == "10:00"
		})).
		Return(nil)

	fx.notificationRepo.EXPECT().
		FindNotificationsByEvent(ctx, "evt-1").
		Return([]*entity.Notification{{ID: "n-1", EventID: "evt-1"}}, nil)
	fx.notificationRepo.EXPECT().
		UpdateNotificationMirror(ctx, "n-1", mock.MatchedBy(func(m *entity.NotificationMirror) bool {
			return m.ReminderID == "rem-new" && m.Time == "10:00"
		})).
		Return(nil)

	newTime := "10:00"
	event, err := fx.service.UpdateEvent(ctx, "user-1", "evt-1", &entity.EventPatch{Time: &newTime})
	require.NoError(t, err)

	assert.Equal(t, "rem-new", event.ReminderID)
	assert.NotEqual(t, "rem-old", event.ReminderID)
	require.NotNil(t, scheduled)
	assert.Equal(t, "Evento actualizado", scheduled.Title)
	assert.True(t, scheduled.FireAt.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, fx.loc)))
}

func TestEventService_UpdateEvent_TitleOnlyKeepsReminder(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(demoEvent(), nil)
	fx.eventRepo.EXPECT().
		UpdateEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.ReminderID == "rem-old" && e.Title == "Demo final"
		})).
		Return(nil)
	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(nil, nil)

	title := "Demo final"
	sameTime := "9:00"
	event, err := fx.service.UpdateEvent(ctx, "user-1", "evt-1", &entity.EventPatch{Title: &title, Time: &sameTime})
	require.NoError(t, err)
	assert.Equal(t, "rem-old", event.ReminderID)

	fx.scheduler.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	fx.scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestEventService_UpdateEvent_StaleReminderIgnored(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(demoEvent(), nil)
	fx.scheduler.EXPECT().Cancel(ctx, "rem-old").Return(service.ErrReminderNotFound)
	fx.scheduler.EXPECT().Schedule(ctx, mock.Anything).Return("rem-new", nil)
	fx.eventRepo.EXPECT().UpdateEvent(ctx, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(nil, nil)

	date := "2024-06-02"
	event, err := fx.service.UpdateEvent(ctx, "user-1", "evt-1", &entity.EventPatch{Date: &date})
	require.NoError(t, err)
	assert.Equal(t, "rem-new", event.ReminderID)
}

func TestEventService_UpdateEvent_ClearingTimeDropsReminder(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(demoEvent(), nil)
	fx.scheduler.EXPECT().Cancel(ctx, "rem-old").Return(nil)
	fx.eventRepo.EXPECT().
		UpdateEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool { return e.ReminderID == "" && e.Time == "" })).
		Return(nil)
	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(nil, nil)

	empty := ""
	event, err := fx.service.UpdateEvent(ctx, "user-1", "evt-1", &entity.EventPatch{Time: &empty})
	require.NoError(t, err)
	assert.False(t, event.HasReminder())
}

func TestEventService_UpdateEvent_NotOwner(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(demoEvent(), nil)

	title := "x"
	_, err := fx.service.UpdateEvent(ctx, "intruder", "evt-1", &entity.EventPatch{Title: &title})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEventService_DeleteEvent_CascadesBestEffort(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(demoEvent(), nil)
	fx.scheduler.EXPECT().Cancel(ctx, "rem-old").Return(nil)
	fx.notificationRepo.EXPECT().
		FindNotificationsByEvent(ctx, "evt-1").
		Return([]*entity.Notification{
			{ID: "n-1", EventID: "evt-1", ReminderID: "rem-old"},
			{ID: "n-2", EventID: "evt-1"},
		}, nil)
	// A failure on one record does not stop the others or the event.
	fx.notificationRepo.EXPECT().DeleteNotification(ctx, "n-1").Return(errors.New("timeout"))
	fx.notificationRepo.EXPECT().DeleteNotification(ctx, "n-2").Return(nil)
	fx.eventRepo.EXPECT().DeleteEvent(ctx, "evt-1").Return(nil)

	require.NoError(t, fx.service.DeleteEvent(ctx, "user-1", "evt-1"))
}

func TestEventService_DeleteEvent_MissingIsNoop(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(nil, repository.ErrEventNotFound)

	assert.NoError(t, fx.service.DeleteEvent(ctx, "user-1", "evt-1"))
}

func TestEventService_DeleteEvent_StoreFailure(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	event := demoEvent()
	event.ReminderID = ""

	fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").Return(event, nil)
	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(nil, errors.New("timeout"))
	fx.eventRepo.EXPECT().DeleteEvent(ctx, "evt-1").Return(errors.New("unavailable"))

	assert.Error(t, fx.service.DeleteEvent(ctx, "user-1", "evt-1"))
}

func TestEventService_ListEvents(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	events := []*entity.Event{demoEvent()}
	fx.eventRepo.EXPECT().FindEventsByDate(ctx, "user-1", "2024-06-01").Return(events, nil)
	fx.eventRepo.EXPECT().FindEventsByUser(ctx, "user-1").Return(events, nil)

	got, err := fx.service.ListEvents(ctx, "user-1", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, events, got)

	got, err = fx.service.ListEvents(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Equal(t, events, got)

	_, err = fx.service.ListEvents(ctx, "user-1", "junio")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSchedule)
}

func TestEventService_ExportCalendar(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	events := []*entity.Event{demoEvent()}
	fx.eventRepo.EXPECT().FindEventsByUser(ctx, "user-1").Return(events, nil)
	fx.calendar.EXPECT().EncodeEvents(events, fx.loc).Return([]byte("BEGIN:VCALENDAR"), nil)

	data, err := fx.service.ExportCalendar(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR", string(data))
}
