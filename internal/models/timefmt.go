package models

import "time"

// Wire formats for clock times and calendar dates. These are stored as-is
// so they round-trip losslessly between the browser, the API and the DB.
const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// ValidClockTime reports whether s is a 24-hour "HH:MM" string.
func ValidClockTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// ValidISODate reports whether s is a "YYYY-MM-DD" calendar date.
func ValidISODate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
