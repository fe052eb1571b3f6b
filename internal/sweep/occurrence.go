// Package sweep computes street-sweeping occurrences from a user's recurring
// schedules and calendar exceptions. It is pure date math: callers pass the
// current time in, nothing here reads the wall clock, so the worker and the
// tests share one implementation.
package sweep

import (
	"time"

	"sweepminder/internal/models"
)

// DefaultHorizonDays bounds the forward scan. Schedules with no valid
// occurrence inside the horizon report no upcoming occurrence rather than
// scanning indefinitely.
const DefaultHorizonDays = 90

// Occurrence is a concrete date sweeping is predicted to happen, together
// with the schedule that governs it (used for the notification text).
type Occurrence struct {
	Date     time.Time
	Schedule models.Schedule
}

// DateString returns the occurrence date in wire format ("YYYY-MM-DD").
func (o Occurrence) DateString() string {
	return o.Date.Format(models.DateLayout)
}

// Options tunes resolver behavior.
type Options struct {
	// MovedDateInheritsRule resolves a moved-to date against the schedule
	// that matched the date it was moved from, falling back to the first
	// active schedule when none matches. When false a moved-to date is
	// always governed by the first active schedule.
	MovedDateInheritsRule bool
}

// WeekOfMonth returns which occurrence-of-weekday slot a date falls in,
// defined as ceil(dayOfMonth/7). Days 29-31 land in week 5 even when the
// month has only four instances of that weekday.
func WeekOfMonth(t time.Time) int {
	return (t.Day()-1)/7 + 1
}

// Matches reports whether date is one of the schedule's recurring days:
// the weekday is equal and the date's week-of-month is in the pattern.
// The Active flag is the resolver's concern, not this predicate's.
func Matches(s models.Schedule, date time.Time) bool {
	if int(date.Weekday()) != s.DayOfWeek {
		return false
	}
	return s.WeekPattern.Contains(WeekOfMonth(date))
}

// NextOccurrence scans today and the following horizonDays-1 dates in order
// and returns the first valid occurrence, applying exception overrides:
// a date some exception moved sweeping to is an occurrence; a date named by
// an exception is skipped; otherwise active schedules are evaluated in list
// order and the first match wins. horizonDays <= 0 means DefaultHorizonDays.
func NextOccurrence(schedules []models.Schedule, exceptions []models.Exception, today time.Time, horizonDays int, opts Options) (Occurrence, bool) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	start := Midnight(today)

	for i := 0; i < horizonDays; i++ {
		date := start.AddDate(0, 0, i)
		dateStr := date.Format(models.DateLayout)

		if ex, ok := movedToException(exceptions, dateStr); ok {
			if s, ok := governingSchedule(schedules, ex, opts); ok {
				return Occurrence{Date: date, Schedule: s}, true
			}
			continue
		}

		if hasExceptionOn(exceptions, dateStr) {
			continue
		}

		for _, s := range schedules {
			if !s.Active {
				continue
			}
			if Matches(s, date) {
				return Occurrence{Date: date, Schedule: s}, true
			}
		}
	}

	return Occurrence{}, false
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func movedToException(exceptions []models.Exception, dateStr string) (models.Exception, bool) {
	for _, ex := range exceptions {
		if ex.MovedToDate == dateStr {
			return ex, true
		}
	}
	return models.Exception{}, false
}

func hasExceptionOn(exceptions []models.Exception, dateStr string) bool {
	for _, ex := range exceptions {
		if ex.Date == dateStr {
			return true
		}
	}
	return false
}

// governingSchedule picks the schedule a moved-to occurrence is attributed
// to. The observed upstream behavior is "first active schedule"; inherit
// mode instead looks for an active schedule whose pattern matched the
// original date the exception moved sweeping away from.
func governingSchedule(schedules []models.Schedule, ex models.Exception, opts Options) (models.Schedule, bool) {
	if opts.MovedDateInheritsRule {
		if orig, err := time.Parse(models.DateLayout, ex.Date); err == nil {
			for _, s := range schedules {
				if s.Active && Matches(s, orig) {
					return s, true
				}
			}
		}
	}
	for _, s := range schedules {
		if s.Active {
			return s, true
		}
	}
	return models.Schedule{}, false
}
