package impl

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	mockRepo "crm/internal/mocks/repository"
	mockSvc "crm/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          *notificationService
	notificationRepo *mockRepo.MockNotificationRepository
	eventRepo        *mockRepo.MockEventRepository
	scheduler        *mockSvc.MockReminderScheduler
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	scheduler := mockSvc.NewMockReminderScheduler(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		EventRepo:        eventRepo,
		Scheduler:        scheduler,
		Config:           testConfig(),
		Logger:           discardLogger(),
	}).(*notificationService)
	// 2024-06-01 03:00 UTC is still May 31 in Mexico City.
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC) }

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		eventRepo:        eventRepo,
		scheduler:        scheduler,
	}
}

func TestNotificationService_Today_UsesReminderTimezone(t *testing.T) {
	fx := createTestNotificationService(t)

	assert.Equal(t, "2024-05-31", fx.service.Today())
}

func TestNotificationService_ListNotifications(t *testing.T) {
	records := []*entity.Notification{
		{ID: "n-1", Date: "2024-05-31", Time: "09:00", UserID: "user-1"},
		{ID: "n-2", Date: "2024-06-01", Time: "09:00", UserID: "user-1"},
		{ID: "n-3", Date: "2024-05-31", UserID: "user-1"},
	}

	t.Run("all", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationsByUser(context.Background(), "user-1").Return(records, nil)

		got, err := fx.service.ListNotifications(context.Background(), "user-1", false)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("today only", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationsByUser(context.Background(), "user-1").Return(records, nil)

		got, err := fx.service.ListNotifications(context.Background(), "user-1", true)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "n-1", got[0].ID)
		assert.Equal(t, "n-3", got[1].ID)
	})

	t.Run("store error", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationsByUser(context.Background(), "user-1").Return(nil, errors.New("unavailable"))

		_, err := fx.service.ListNotifications(context.Background(), "user-1", true)
		assert.Error(t, err)
	})
}

func TestNotificationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("completes own record", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").
			Return(&entity.Notification{ID: "n-1", UserID: "user-1", Status: entity.NotificationStatusPending}, nil)
		fx.notificationRepo.EXPECT().UpdateNotificationStatus(ctx, "n-1", entity.NotificationStatusCompleted).Return(nil)

		got, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", entity.NotificationStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, entity.NotificationStatusCompleted, got.Status)
	})

	t.Run("leaving pending cancels the reminder and unlinks the event", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").Return(&entity.Notification{
			ID: "n-1", EventID: "evt-1", UserID: "user-1", Status: entity.NotificationStatusPending, ReminderID: "rem-1",
		}, nil)
		fx.notificationRepo.EXPECT().UpdateNotificationStatus(ctx, "n-1", entity.NotificationStatusCancelled).Return(nil)
		fx.scheduler.EXPECT().Cancel(ctx, "rem-1").Return(service.ErrReminderNotFound)
		fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").
			Return(&entity.Event{ID: "evt-1", UserID: "user-1", Date: "2024-06-02", Time: "09:00", ReminderID: "rem-1"}, nil)
		fx.eventRepo.EXPECT().UpdateEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.ID == "evt-1" && e.ReminderID == ""
		})).Return(nil)

		got, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", entity.NotificationStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, entity.NotificationStatusCancelled, got.Status)
	})

	t.Run("leaving pending keeps a newer event reminder", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").Return(&entity.Notification{
			ID: "n-1", EventID: "evt-1", UserID: "user-1", Status: entity.NotificationStatusPending, ReminderID: "rem-old",
		}, nil)
		fx.notificationRepo.EXPECT().UpdateNotificationStatus(ctx, "n-1", entity.NotificationStatusCompleted).Return(nil)
		fx.scheduler.EXPECT().Cancel(ctx, "rem-old").Return(nil)
		fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").
			Return(&entity.Event{ID: "evt-1", UserID: "user-1", ReminderID: "rem-new"}, nil)

		_, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", entity.NotificationStatusCompleted)
		require.NoError(t, err)
	})

	t.Run("back to pending schedules the reminder again", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").Return(&entity.Notification{
			ID: "n-1", EventID: "evt-1", UserID: "user-1", Status: entity.NotificationStatusCompleted, ReminderID: "rem-1",
		}, nil)
		fx.notificationRepo.EXPECT().UpdateNotificationStatus(ctx, "n-1", entity.NotificationStatusPending).Return(nil)
		fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").
			Return(&entity.Event{ID: "evt-1", UserID: "user-1", Title: "Demo", Date: "2024-06-02", Time: "09:00"}, nil)

		var scheduled *service.Reminder
		fx.scheduler.EXPECT().Schedule(ctx, mock.Anything).
			Run(func(_ context.Context, r *service.Reminder) { scheduled = r }).
			Return("rem-1", nil)
		fx.eventRepo.EXPECT().UpdateEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.ReminderID == "rem-1"
		})).Return(nil)
		fx.notificationRepo.EXPECT().UpdateNotificationMirror(ctx, "n-1", mock.MatchedBy(func(m *entity.NotificationMirror) bool {
			return m.ReminderID == "rem-1"
		})).Return(nil)

		got, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", entity.NotificationStatusPending)
		require.NoError(t, err)
		assert.Equal(t, "rem-1", got.ReminderID)

		require.NotNil(t, scheduled)
		assert.Equal(t, "rem-1", scheduled.ID)
		assert.Equal(t, "Demo", scheduled.Body)
		assert.Equal(t, "evt-1", scheduled.EventID)
	})

	t.Run("back to pending after the event passed", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").Return(&entity.Notification{
			ID: "n-1", EventID: "evt-1", UserID: "user-1", Status: entity.NotificationStatusCancelled,
		}, nil)
		fx.notificationRepo.EXPECT().UpdateNotificationStatus(ctx, "n-1", entity.NotificationStatusPending).Return(nil)
		fx.eventRepo.EXPECT().FindEventByID(ctx, "evt-1").
			Return(&entity.Event{ID: "evt-1", UserID: "user-1", Date: "2024-05-30", Time: "09:00"}, nil)

		got, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", entity.NotificationStatusPending)
		require.NoError(t, err)
		assert.Empty(t, got.ReminderID)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestNotificationService(t)

		_, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", "archivado")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").Return(nil, repository.ErrNotificationNotFound)

		_, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", entity.NotificationStatusCancelled)
		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").
			Return(&entity.Notification{ID: "n-1", UserID: "user-2"}, nil)

		_, err := fx.service.UpdateStatus(ctx, "user-1", "n-1", entity.NotificationStatusCancelled)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes own record", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").
			Return(&entity.Notification{ID: "n-1", UserID: "user-1"}, nil)
		fx.notificationRepo.EXPECT().DeleteNotification(ctx, "n-1").Return(nil)

		assert.NoError(t, fx.service.DeleteNotification(ctx, "user-1", "n-1"))
	})

	t.Run("missing record is a no-op", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, "n-1").Return(nil, repository.ErrNotificationNotFound)

		assert.NoError(t, fx.service.DeleteNotification(ctx, "user-1", "n-1"))
	})
}
