package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/snapshot"
)

// NotificationUsecase manages the notification records of a user
type NotificationUsecase interface {
	// ListNotifications returns the user's records, newest first. todayOnly
	// keeps the records dated today in the reminder timezone.
	ListNotifications(ctx context.Context, userID string, todayOnly bool) ([]*entity.Notification, error)

	// UpdateStatus marks a record pending, completed or cancelled
	UpdateStatus(ctx context.Context, userID, notificationID string, status entity.NotificationStatus) (*entity.Notification, error)

	DeleteNotification(ctx context.Context, userID, notificationID string) error

	WatchNotifications(ctx context.Context, userID string) (snapshot.Iterator[*entity.Notification], error)

	// Today returns the current calendar day in the reminder timezone
	Today() string
}
