package sqlite

import (
	"time"
)

// TimeLayout is the layout SQLite's current_timestamp default produces.
// Timestamps are stored in UTC.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTimeForDB formats a time.Time value the way the store writes it
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTimeFromDB parses a timestamp string read from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.UTC)
}
