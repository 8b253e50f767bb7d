package service

import (
	"time"

	"crm/internal/domain/entity"
)

// CalendarEncoder renders events in the iCalendar format.
type CalendarEncoder interface {
	EncodeEvents(events []*entity.Event, loc *time.Location) ([]byte, error)
}
