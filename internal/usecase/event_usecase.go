// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/snapshot"
)

// EventInput holds the fields of a new event
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time"`
	ClientID    string `json:"client_id"`
}

// EventUsecase manages calendar events and keeps each event's reminder and
// notification record in step with its date and time.
type EventUsecase interface {
	// CreateEvent stores the event. When a time is given a reminder is
	// scheduled and a pending notification record is created; a scheduling
	// failure leaves the event without reminder instead of failing.
	CreateEvent(ctx context.Context, userID string, input *EventInput) (*entity.Event, error)

	GetEvent(ctx context.Context, userID, eventID string) (*entity.Event, error)

	// ListEvents returns the user's events, or only those of date when set.
	ListEvents(ctx context.Context, userID, date string) ([]*entity.Event, error)

	// UpdateEvent applies patch. A new date or time replaces the reminder.
	UpdateEvent(ctx context.Context, userID, eventID string, patch *entity.EventPatch) (*entity.Event, error)

	// DeleteEvent cancels the reminder, removes the notification records
	// and the event. Missing events are not an error.
	DeleteEvent(ctx context.Context, userID, eventID string) error

	WatchEventsByDate(ctx context.Context, userID, date string) (snapshot.Iterator[*entity.Event], error)

	// ExportCalendar renders the user's events as an iCalendar feed.
	ExportCalendar(ctx context.Context, userID string) ([]byte, error)
}
