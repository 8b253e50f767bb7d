package impl

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	mockRepo "crm/internal/mocks/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    *deviceService
	deviceRepo *mockRepo.MockDeviceRepository
	now        time.Time
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := NewDeviceService(deviceRepo).(*deviceService)
	svc.now = func() time.Time { return now }

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
		now:        now,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, "user-1").
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "user-1", deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "user-1", device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
	assert.Equal(t, fx.now, device.CreatedAt)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existingDevice := &entity.UserDevice{
		ID:       "dev-1",
		UserID:   "user-1",
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "android",
	}
	updatedDevice := *existingDevice
	updatedDevice.FCMToken = "new-fcm-token"
	updatedDevice.IsActive = true

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, "user-1").
		Return([]*entity.UserDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, "dev-1", "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "dev-1").
		Return(&updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, "user-1", &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	ctx := context.Background()
	info := &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "device-123", Platform: "web"}

	t.Run("lookup fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "user-1").Return(nil, errors.New("unavailable"))

		_, err := fx.service.RegisterDevice(ctx, "user-1", info)
		assert.ErrorContains(t, err, "failed to find devices by user")
	})

	t.Run("token held by another device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "user-1").Return(nil, nil)
		fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		_, err := fx.service.RegisterDevice(ctx, "user-1", info)
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("create fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "user-1").Return(nil, nil)
		fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(errors.New("unavailable"))

		_, err := fx.service.RegisterDevice(ctx, "user-1", info)
		assert.ErrorContains(t, err, "failed to create device")
	})
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()

	t.Run("own device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").Return(&entity.UserDevice{ID: "dev-1", UserID: "user-1"}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, "dev-1", "tok-2").Return(nil)

		assert.NoError(t, fx.service.UpdateFCMToken(ctx, "user-1", "dev-1", "tok-2"))
	})

	t.Run("device not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, "user-1", "dev-1", "tok-2")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").Return(&entity.UserDevice{ID: "dev-1", UserID: "user-2"}, nil)

		err := fx.service.UpdateFCMToken(ctx, "user-1", "dev-1", "tok-2")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	ctx := context.Background()
	fx := createTestDeviceService(t)

	devices := []*entity.UserDevice{{ID: "dev-1", IsActive: true}}
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("own device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").Return(&entity.UserDevice{ID: "dev-1", UserID: "user-1"}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, "dev-1").Return(nil)

		assert.NoError(t, fx.service.DeactivateDevice(ctx, "user-1", "dev-1"))
	})

	t.Run("store fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").Return(&entity.UserDevice{ID: "dev-1", UserID: "user-1"}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, "dev-1").Return(errors.New("unavailable"))

		assert.ErrorContains(t, fx.service.DeactivateDevice(ctx, "user-1", "dev-1"), "failed to delete device")
	})
}
