package entity

import (
	"time"
)

// NotificationStatus is the user-settable state of a notification record.
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pendiente"
	NotificationStatusCompleted NotificationStatus = "completado"
	NotificationStatusCancelled NotificationStatus = "cancelado"
)

// IsValid reports whether s is a known status.
func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusCompleted, NotificationStatusCancelled:
		return true
	default:
		return false
	}
}

// Notification is the queryable mirror of an event's reminder.
type Notification struct {
	ID          string             `json:"id" firestore:"-"`
	EventID     string             `json:"event_id" firestore:"idEvento"` // Originating event.
	Title       string             `json:"title" firestore:"titulo"`
	Description string             `json:"description" firestore:"descripcion"`
	Date        string             `json:"date" firestore:"fecha"`
	Time        string             `json:"time" firestore:"hora"`
	UserID      string             `json:"user_id" firestore:"userId"`
	Status      NotificationStatus `json:"status" firestore:"estado"`
	ReminderID  string             `json:"notification_id,omitempty" firestore:"notificationId"` // Copy of the event's reminder identifier.
	CreatedAt   time.Time          `json:"created_at" firestore:"createdAt"`
}

// IsPending reports whether the reminder should still be delivered.
func (n *Notification) IsPending() bool {
	return n.Status == NotificationStatusPending
}

// NotificationMirror holds the denormalized event fields refreshed on the
// notification record whenever its event changes.
type NotificationMirror struct {
	Title       string
	Description string
	Date        string
	Time        string
	ReminderID  string
}

// MirrorOf returns the denormalized view of e.
func MirrorOf(e *Event) *NotificationMirror {
	return &NotificationMirror{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		ReminderID:  e.ReminderID,
	}
}

// NotificationsOn keeps the records whose stored date is day, whatever their time.
func NotificationsOn(notifications []*Notification, day string) []*Notification {
	filtered := make([]*Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.Date == day {
			filtered = append(filtered, n)
		}
	}

	return filtered
}
