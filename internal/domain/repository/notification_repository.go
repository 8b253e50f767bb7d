package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/snapshot"

	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification record is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification record persistence.
type NotificationRepository interface {
	// CreateNotification persists a new notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification record by its ID.
	FindNotificationByID(ctx context.Context, id string) (*entity.Notification, error)

	// FindNotificationsByUser retrieves a user's records, newest first.
	FindNotificationsByUser(ctx context.Context, userID string) ([]*entity.Notification, error)

	// FindNotificationsByEvent retrieves the records referencing an event.
	FindNotificationsByEvent(ctx context.Context, eventID string) ([]*entity.Notification, error)

	// FindNotificationsByStatus retrieves every record with the given status.
	FindNotificationsByStatus(ctx context.Context, status entity.NotificationStatus) ([]*entity.Notification, error)

	// FindAllNotifications retrieves every record.
	FindAllNotifications(ctx context.Context) ([]*entity.Notification, error)

	// UpdateNotificationStatus sets the status of a record.
	UpdateNotificationStatus(ctx context.Context, id string, status entity.NotificationStatus) error

	// UpdateNotificationMirror refreshes the denormalized event fields of a record.
	UpdateNotificationMirror(ctx context.Context, id string, mirror *entity.NotificationMirror) error

	// DeleteNotification removes a record.
	DeleteNotification(ctx context.Context, id string) error

	// WatchNotificationsByUser opens a live query over a user's records, newest first.
	WatchNotificationsByUser(ctx context.Context, userID string) (snapshot.Iterator[*entity.Notification], error)
}
