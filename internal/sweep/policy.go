package sweep

import (
	"math"
	"time"

	"sweepminder/internal/models"
)

// DaysUntil returns the whole calendar days between now's date and target's
// date. Rounding absorbs DST transitions that make a "day" 23 or 25 hours.
func DaysUntil(now, target time.Time) int {
	diff := Midnight(target).Sub(Midnight(now))
	return int(math.Round(diff.Hours() / 24))
}

// DueKinds decides which reminders are due at this exact minute for the
// given occurrence: night_before when the occurrence is tomorrow and the
// clock reads the user's night-before time, morning_of when it is today
// and the clock reads the morning-of time. The match is minute-exact, not
// ">= reminder time"; the worker's once-a-minute tick is what makes that
// reliable. The duplicate-send guard lives in the worker's idempotency
// mark, not here.
func DueKinds(occ Occurrence, settings models.ReminderSetting, now time.Time) []models.NotificationKind {
	days := DaysUntil(now, occ.Date)
	clock := now.Format(models.ClockLayout)

	var due []models.NotificationKind
	if days == 1 && clock == settings.NightBefore {
		due = append(due, models.KindNightBefore)
	}
	if days == 0 && clock == settings.MorningOf {
		due = append(due, models.KindMorningOf)
	}
	return due
}
