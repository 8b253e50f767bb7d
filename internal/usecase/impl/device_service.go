package impl

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	// A known device_id only gets its token refreshed and is reactivated.
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := s.now()
	device := &entity.UserDevice{
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WithDetails("device is already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID, fcmToken string) error {
	if _, err := s.findOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID string) error {
	if _, err := s.findOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) findOwned(ctx context.Context, userID, deviceID string) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return device, nil
}
