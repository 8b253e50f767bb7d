package service

import (
	"context"
	"time"
)

// ReminderEvent is published when a reminder fires
type ReminderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ReminderID string    `json:"reminder_id"`
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	FireAt     time.Time `json:"fire_at"`
}

// EventPublisher defines the interface for handing fired reminders to the delivery worker
type EventPublisher interface {
	// PublishReminderEvent publishes a fired reminder for async delivery
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// ReminderHandler consumes fired reminders
type ReminderHandler interface {
	HandleReminder(ctx context.Context, event *ReminderEvent) error
}
