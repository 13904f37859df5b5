// Package schedule derives absolute start instants from the calendar
// date and time-of-day fields the booking backend serves, and relates
// them to an explicitly injected "now".
package schedule

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var timeLayouts = []string{"15:04:05", "15:04"}

var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

var (
	ErrInvalidDate    = errors.New("invalid session date")
	ErrInvalidTime    = errors.New("invalid session start time")
	ErrInvalidInstant = errors.New("invalid start instant")
)

// At combines a calendar date ("2006-01-02") and a time-of-day
// ("15:04:05" or "15:04") into a single instant in the local zone. The
// backend serves both fields already in the zone the caller compares
// against.
func At(date, timeOfDay string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range timeLayouts {
		tod, err := time.ParseInLocation(layout, timeOfDay, time.Local)
		if err != nil {
			continue
		}
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			tod.Hour(), tod.Minute(), tod.Second(), 0,
			time.Local,
		), nil
	}

	return time.Time{}, ErrInvalidTime
}

// ParseInstant parses a denormalized start-instant string. The backend
// emits either RFC 3339 or a zone-less local datetime.
func ParseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidInstant
}

// IsFuture reports whether t is strictly after now.
func IsFuture(t, now time.Time) bool {
	return t.After(now)
}

// HoursUntil returns t minus now in hours. Negative for past instants.
func HoursUntil(t, now time.Time) float64 {
	return t.Sub(now).Hours()
}
