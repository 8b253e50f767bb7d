// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/snapshot"

	"github.com/pkg/errors"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the interface for event persistence.
type EventRepository interface {
	// CreateEvent persists a new event. An empty ID is assigned by the store.
	CreateEvent(ctx context.Context, event *entity.Event) error

	// FindEventByID retrieves an event by its ID.
	FindEventByID(ctx context.Context, id string) (*entity.Event, error)

	// FindEventsByDate retrieves a user's events of a calendar day ordered by time.
	FindEventsByDate(ctx context.Context, userID, date string) ([]*entity.Event, error)

	// FindEventsByUser retrieves all events of a user ordered by date and time.
	FindEventsByUser(ctx context.Context, userID string) ([]*entity.Event, error)

	// CountEventsByDate counts a user's events of a calendar day.
	CountEventsByDate(ctx context.Context, userID, date string) (int, error)

	// UpdateEvent overwrites the mutable fields of an existing event.
	UpdateEvent(ctx context.Context, event *entity.Event) error

	// DeleteEvent removes an event.
	DeleteEvent(ctx context.Context, id string) error

	// WatchEventsByDate opens a live query over a user's events of a day.
	WatchEventsByDate(ctx context.Context, userID, date string) (snapshot.Iterator[*entity.Event], error)
}
