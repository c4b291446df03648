package schedule

import (
	"strings"
	"time"
)

// WeekdayName derives the lowercase English weekday name for a date.
// It is the single source of the keys used by Musician.Availability;
// catalog seeds and the scheduler must both go through it so the two
// can never disagree on case.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ValidWeekday reports whether name is one of the seven lowercase
// English weekday names.
func ValidWeekday(name string) bool {
	switch name {
	case "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday":
		return true
	default:
		return false
	}
}
