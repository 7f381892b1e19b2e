package domain

import (
	"time"

	"github.com/avelinemakeup/AM-BookingService/pkg/types"
)

// DaySchedule opening hours of a single weekday
type DaySchedule struct {
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
}

// WeekSchedule weekly recurring open/closed schedule.
// Read-only external configuration; unspecified days fall back to
// default hours, open (fail-open, so a partial config never hides
// all availability).
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday returns the normalized schedule for the given weekday
func (w WeekSchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	var day DaySchedule
	switch weekday {
	case time.Monday:
		day = w.Monday
	case time.Tuesday:
		day = w.Tuesday
	case time.Wednesday:
		day = w.Wednesday
	case time.Thursday:
		day = w.Thursday
	case time.Friday:
		day = w.Friday
	case time.Saturday:
		day = w.Saturday
	case time.Sunday:
		day = w.Sunday
	}
	return day.orDefault()
}

// IsClosedOn reports whether the business is closed on the date's weekday
func (w WeekSchedule) IsClosedOn(date time.Time) bool {
	return w.ForWeekday(date.Weekday()).Closed
}

// orDefault fills an unspecified day with default open hours
func (d DaySchedule) orDefault() DaySchedule {
	if d.Closed {
		return d
	}
	if d.Open.IsZero() {
		d.Open = DefaultOpenTime
	}
	if d.Close.IsZero() {
		d.Close = DefaultCloseTime
	}
	return d
}
