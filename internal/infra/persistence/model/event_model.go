// Package model holds the GORM table definitions of the relational store.
package model

import (
	"time"
)

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Date        string `gorm:"type:varchar(10);not null;index:idx_events_user_date,priority:2"`
	Time        string `gorm:"type:varchar(8)"`
	UserID      string `gorm:"type:varchar(128);not null;index:idx_events_user_date,priority:1"`
	ClientID    string `gorm:"type:varchar(64)"`
	ReminderID  string `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
