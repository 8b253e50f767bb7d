// Package calendar exports events as iCalendar feeds.
package calendar

import (
	"strings"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"

	ical "github.com/arran4/golang-ical"
	"github.com/pkg/errors"
)

const (
	productID = "crm"

	// timedEventLength is the DTEND offset for events that carry a time.
	timedEventLength = 30 * time.Minute
)

type icsEncoder struct {
	now func() time.Time
}

// NewICSEncoder creates a CalendarEncoder backed by golang-ical
func NewICSEncoder() service.CalendarEncoder {
	return &icsEncoder{now: time.Now}
}

// EncodeEvents renders events as a VCALENDAR. Events without a time become
// all-day entries; timed events get a display alarm at their start.
func (e *icsEncoder) EncodeEvents(events []*entity.Event, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.Local
	}

	cal := ical.NewCalendarFor(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName("Eventos")
	cal.SetXWRTimezone(loc.String())

	stamp := e.now()

	for _, event := range events {
		vevent := cal.AddEvent(event.ID + "@" + productID)
		vevent.SetDtStampTime(stamp)
		if !event.CreatedAt.IsZero() {
			vevent.SetCreatedTime(event.CreatedAt)
		}
		vevent.SetSummary(event.Title)
		if event.Description != "" {
			vevent.SetDescription(event.Description)
		}

		if strings.TrimSpace(event.Time) == "" {
			day, err := time.ParseInLocation(entity.DateLayout, event.Date, loc)
			if err != nil {
				return nil, errors.Wrapf(entity.ErrInvalidSchedule, "event %s date %q", event.ID, event.Date)
			}
			vevent.SetAllDayStartAt(day)
			vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))

			continue
		}

		start, err := event.FireAt(loc)
		if err != nil {
			return nil, errors.Wrapf(err, "event %s", event.ID)
		}
		vevent.SetStartAt(start)
		vevent.SetEndAt(start.Add(timedEventLength))

		alarm := vevent.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger("-PT0M")
		alarm.SetProperty(ical.ComponentPropertyDescription, event.Title)
	}

	var b strings.Builder
	if err := cal.SerializeTo(&b); err != nil {
		return nil, errors.Wrap(err, "failed to serialize calendar")
	}

	return []byte(b.String()), nil
}
