package model

import (
	"time"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	EventID     string `gorm:"type:varchar(64);not null;index"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Date        string `gorm:"type:varchar(10)"`
	Time        string `gorm:"type:varchar(8)"`
	UserID      string `gorm:"type:varchar(128);not null;index"`
	Status      string `gorm:"type:varchar(20);not null;index"`
	ReminderID  string `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
