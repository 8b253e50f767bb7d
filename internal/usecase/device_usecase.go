package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, userID string, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, userID, deviceID, fcmToken string) error

	// GetUserDevices retrieves all active devices for a user
	GetUserDevices(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device
	DeactivateDevice(ctx context.Context, userID, deviceID string) error
}
