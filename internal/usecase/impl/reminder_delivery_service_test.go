package impl

import (
	"context"
	"fmt"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	mockRepo "crm/internal/mocks/repository"
	mockSvc "crm/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderDeliveryFixtures struct {
	service          *reminderDeliveryService
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	push             *mockSvc.MockPushService
}

func createTestReminderDeliveryService(t *testing.T) reminderDeliveryFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	push := mockSvc.NewMockPushService(t)

	svc := NewReminderDeliveryService(notificationRepo, deviceRepo, push, discardLogger()).(*reminderDeliveryService)

	return reminderDeliveryFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		push:             push,
	}
}

func firedReminder() *service.ReminderEvent {
	return &service.ReminderEvent{
		ReminderID: "rem-1",
		EventID:    "evt-1",
		UserID:     "user-1",
		Title:      "Tienes un evento pendiente",
		Body:       "Demo",
	}
}

func pendingRecord(reminderID string) []*entity.Notification {
	return []*entity.Notification{{
		ID:         "n-1",
		EventID:    "evt-1",
		Status:     entity.NotificationStatusPending,
		ReminderID: reminderID,
	}}
}

func TestReminderDelivery_SendsToActiveDevices(t *testing.T) {
	ctx := context.Background()
	fx := createTestReminderDeliveryService(t)

	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(pendingRecord("rem-1"), nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return([]*entity.UserDevice{
		{ID: "d-1", FCMToken: "tok-1"},
		{ID: "d-2", FCMToken: "tok-2"},
	}, nil)
	fx.push.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1", "tok-2"}, "Tienes un evento pendiente", "Demo",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["event_id"] == "evt-1" && data["reminder_id"] == "rem-1"
			})).
		Return(1, 1, []string{"tok-2"}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevicesByToken(ctx, []string{"tok-2"}).Return(nil)

	require.NoError(t, fx.service.HandleReminder(ctx, firedReminder()))
}

func TestReminderDelivery_SkipsWhenNotPending(t *testing.T) {
	tests := []struct {
		name    string
		records []*entity.Notification
	}{
		{"record deleted", nil},
		{"record completed", []*entity.Notification{{EventID: "evt-1", Status: entity.NotificationStatusCompleted, ReminderID: "rem-1"}}},
		{"reminder replaced", pendingRecord("rem-2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			fx := createTestReminderDeliveryService(t)

			fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(tt.records, nil)

			require.NoError(t, fx.service.HandleReminder(ctx, firedReminder()))
		})
	}
}

func TestReminderDelivery_NoDevices(t *testing.T) {
	ctx := context.Background()
	fx := createTestReminderDeliveryService(t)

	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(pendingRecord("rem-1"), nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(nil, nil)

	assert.NoError(t, fx.service.HandleReminder(ctx, firedReminder()))
}

func TestReminderDelivery_SplitsLargeBatches(t *testing.T) {
	ctx := context.Background()
	fx := createTestReminderDeliveryService(t)

	devices := make([]*entity.UserDevice, firebaseBatchSize+20)
	for i := range devices {
		devices[i] = &entity.UserDevice{FCMToken: fmt.Sprintf("tok-%d", i)}
	}

	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(pendingRecord("rem-1"), nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(devices, nil)
	fx.push.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(firebaseBatchSize, 0, nil, nil).Once()
	fx.push.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }), mock.Anything, mock.Anything, mock.Anything).
		Return(20, 0, nil, nil).Once()

	assert.NoError(t, fx.service.HandleReminder(ctx, firedReminder()))
}

func TestReminderDelivery_TotalFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	fx := createTestReminderDeliveryService(t)

	fx.notificationRepo.EXPECT().FindNotificationsByEvent(ctx, "evt-1").Return(pendingRecord("rem-1"), nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return([]*entity.UserDevice{{FCMToken: "tok-1"}}, nil)
	fx.push.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("messaging unavailable"))

	assert.Error(t, fx.service.HandleReminder(ctx, firedReminder()))
}
