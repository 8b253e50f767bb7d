// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the calendar day format stored on events, notifications and sales.
const DateLayout = "2006-01-02"

// ErrInvalidSchedule is returned when an event date or time cannot be parsed.
var ErrInvalidSchedule = errors.New("invalid event date or time")

// Event is a scheduled calendar item owned by a user, optionally linked to a client.
type Event struct {
	ID          string `json:"id" firestore:"-"`
	Title       string `json:"title" firestore:"titulo"` // Also used as the reminder body.
	Description string `json:"description" firestore:"descripcion"`
	Date        string `json:"date" firestore:"fecha"`          // Calendar day, YYYY-MM-DD.
	Time        string `json:"time,omitempty" firestore:"hora"` // Hour:minute; empty means no reminder.
	UserID      string `json:"user_id" firestore:"userId"`
	ClientID    string `json:"client_id,omitempty" firestore:"clienteId"`

	// ReminderID links the event to its scheduled reminder.
	ReminderID string    `json:"notification_id,omitempty" firestore:"notificationId"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

// HasReminder reports whether the event is linked to a scheduled reminder.
func (e *Event) HasReminder() bool {
	return e.ReminderID != ""
}

// FireAt returns the absolute instant of the event in loc.
func (e *Event) FireAt(loc *time.Location) (time.Time, error) {
	return ScheduleInstant(e.Date, e.Time, loc)
}

// ScheduleInstant combines a calendar day and an hour:minute string into an
// instant in loc. Hours and minutes may be given without zero padding.
func ScheduleInstant(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidSchedule, "date %q", date)
	}

	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// ParseClock parses "H:M", "HH:MM" and "HH:MM:SS" (seconds are ignored).
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, errors.Wrapf(ErrInvalidSchedule, "time %q", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.Wrapf(ErrInvalidSchedule, "time %q", clock)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.Wrapf(ErrInvalidSchedule, "time %q", clock)
	}

	return hour, minute, nil
}

// NormalizeClock renders a valid clock string as zero-padded HH:MM.
func NormalizeClock(clock string) (string, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return "", err
	}

	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04"), nil
}

// EventPatch carries the fields of an event update. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	ClientID    *string `json:"client_id,omitempty"`
}

// ChangesSchedule reports whether the patch supplies a date or time that differs from e.
func (p *EventPatch) ChangesSchedule(e *Event) bool {
	if p.Date != nil && *p.Date != e.Date {
		return true
	}

	return p.Time != nil && *p.Time != e.Time
}

// Apply copies the supplied fields onto e.
func (p *EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.ClientID != nil {
		e.ClientID = *p.ClientID
	}
}
