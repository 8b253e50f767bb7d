// Package service defines interfaces for components the use cases depend on
// but that live outside the domain, such as schedulers and push gateways.
package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrReminderNotFound is returned when cancelling a reminder that is not scheduled.
var ErrReminderNotFound = errors.New("reminder not found")

// Reminder is a one-shot alert fired at an absolute instant.
type Reminder struct {
	// ID is kept when set (restoring after a restart), otherwise the scheduler assigns one.
	ID      string
	UserID  string
	EventID string
	Title   string
	Body    string
	FireAt  time.Time
}

// ReminderScheduler schedules and cancels reminders.
type ReminderScheduler interface {
	// Schedule registers a reminder and returns its identifier. Instants in
	// the past fire as soon as possible.
	Schedule(ctx context.Context, reminder *Reminder) (string, error)

	// Cancel removes a scheduled reminder. Unknown identifiers return ErrReminderNotFound.
	Cancel(ctx context.Context, id string) error
}
