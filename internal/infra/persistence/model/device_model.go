package model

import (
	"time"
)

// UserDeviceModel is a row of 'user_devices'. A user registers each physical
// device once; unregistering only clears IsActive.
type UserDeviceModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	UserID    string `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_devices_owner,priority:1"`
	DeviceID  string `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_owner,priority:2"`
	FCMToken  string `gorm:"type:varchar(255);not null;index"`
	Platform  string `gorm:"type:varchar(16);not null"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
