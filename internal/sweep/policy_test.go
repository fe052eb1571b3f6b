package sweep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sweepminder/internal/models"
)

func defaultSettings() models.ReminderSetting {
	return models.ReminderSetting{
		NightBefore: "20:00",
		MorningOf:   "07:00",
	}
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestDaysUntil(t *testing.T) {
	now := at(2024, time.January, 2, 20, 0)

	assert.Equal(t, 1, DaysUntil(now, date(2024, time.January, 3)))
	assert.Equal(t, 0, DaysUntil(now, date(2024, time.January, 2)))
	assert.Equal(t, -1, DaysUntil(now, date(2024, time.January, 1)))
	assert.Equal(t, 30, DaysUntil(now, date(2024, time.February, 1)))
}

func TestDueKindsNightBeforeExactMinute(t *testing.T) {
	occ := Occurrence{Date: date(2024, time.January, 3), Schedule: firstWednesday()}
	settings := defaultSettings()

	due := DueKinds(occ, settings, at(2024, time.January, 2, 20, 0))
	assert.Equal(t, []models.NotificationKind{models.KindNightBefore}, due)

	assert.Empty(t, DueKinds(occ, settings, at(2024, time.January, 2, 19, 59)), "one minute early")
	assert.Empty(t, DueKinds(occ, settings, at(2024, time.January, 2, 20, 1)), "one minute late")
}

func TestDueKindsMorningOfExactMinute(t *testing.T) {
	occ := Occurrence{Date: date(2024, time.January, 3), Schedule: firstWednesday()}
	settings := defaultSettings()

	due := DueKinds(occ, settings, at(2024, time.January, 3, 7, 0))
	assert.Equal(t, []models.NotificationKind{models.KindMorningOf}, due)

	assert.Empty(t, DueKinds(occ, settings, at(2024, time.January, 3, 6, 59)))
	assert.Empty(t, DueKinds(occ, settings, at(2024, time.January, 3, 7, 1)))
}

func TestDueKindsWrongDay(t *testing.T) {
	occ := Occurrence{Date: date(2024, time.January, 3)}
	settings := defaultSettings()

	// Two days out at the night-before time: nothing due.
	assert.Empty(t, DueKinds(occ, settings, at(2024, time.January, 1, 20, 0)))
	// Day of the occurrence at the night-before time: nothing due.
	assert.Empty(t, DueKinds(occ, settings, at(2024, time.January, 3, 20, 0)))
}

func TestDueKindsCustomTimes(t *testing.T) {
	occ := Occurrence{Date: date(2024, time.January, 3)}
	settings := models.ReminderSetting{NightBefore: "21:30", MorningOf: "06:15"}

	assert.Equal(t,
		[]models.NotificationKind{models.KindNightBefore},
		DueKinds(occ, settings, at(2024, time.January, 2, 21, 30)))
	assert.Equal(t,
		[]models.NotificationKind{models.KindMorningOf},
		DueKinds(occ, settings, at(2024, time.January, 3, 6, 15)))
}
