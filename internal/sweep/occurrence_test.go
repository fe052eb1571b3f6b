package sweep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweepminder/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func firstWednesday() models.Schedule {
	return models.Schedule{
		ID:          1,
		DayOfWeek:   3, // Wednesday
		WeekPattern: models.IntList{1},
		StartTime:   "09:00",
		EndTime:     "11:00",
		Active:      true,
	}
}

func TestWeekOfMonth(t *testing.T) {
	cases := []struct {
		day  int
		want int
	}{
		{1, 1},
		{7, 1},
		{8, 2},
		{14, 2},
		{15, 3},
		{21, 3},
		{22, 4},
		{28, 4},
		{29, 5},
		{31, 5},
	}
	for _, tc := range cases {
		got := WeekOfMonth(date(2024, time.January, tc.day))
		assert.Equal(t, tc.want, got, "day %d", tc.day)
	}
}

func TestMatches(t *testing.T) {
	s := firstWednesday()

	assert.True(t, Matches(s, date(2024, time.January, 3)), "first Wednesday")
	assert.False(t, Matches(s, date(2024, time.January, 10)), "second Wednesday")
	assert.False(t, Matches(s, date(2024, time.January, 4)), "Thursday")
}

func TestNextOccurrenceFirstWednesday(t *testing.T) {
	occ, ok := NextOccurrence([]models.Schedule{firstWednesday()}, nil, date(2024, time.January, 1), 0, Options{})

	require.True(t, ok)
	assert.Equal(t, "2024-01-03", occ.DateString())
	assert.Equal(t, uint(1), occ.Schedule.ID)
}

func TestNextOccurrenceSkipsCancelledDate(t *testing.T) {
	exceptions := []models.Exception{{Date: "2024-01-03", Reason: "holiday"}}

	occ, ok := NextOccurrence([]models.Schedule{firstWednesday()}, exceptions, date(2024, time.January, 1), 0, Options{})

	require.True(t, ok)
	assert.Equal(t, "2024-02-07", occ.DateString(), "should fall through to February's first Wednesday")
}

func TestNextOccurrenceMovedDate(t *testing.T) {
	exceptions := []models.Exception{{Date: "2024-01-03", MovedToDate: "2024-01-10"}}

	occ, ok := NextOccurrence([]models.Schedule{firstWednesday()}, exceptions, date(2024, time.January, 1), 0, Options{})

	require.True(t, ok)
	// 2024-01-10 is the second Wednesday, which no pattern matches; the
	// move-in alone makes it an occurrence.
	assert.Equal(t, "2024-01-10", occ.DateString())
	assert.Equal(t, uint(1), occ.Schedule.ID)
}

func TestNextOccurrenceMovedEarlierWins(t *testing.T) {
	exceptions := []models.Exception{{Date: "2024-01-03", MovedToDate: "2024-01-02"}}

	occ, ok := NextOccurrence([]models.Schedule{firstWednesday()}, exceptions, date(2024, time.January, 1), 0, Options{})

	require.True(t, ok)
	assert.Equal(t, "2024-01-02", occ.DateString())
}

func TestNextOccurrenceMovedDateGoverningSchedule(t *testing.T) {
	firstMonday := models.Schedule{
		ID:          10,
		DayOfWeek:   1,
		WeekPattern: models.IntList{1},
		Active:      true,
	}
	wednesday := firstWednesday()
	wednesday.ID = 20

	schedules := []models.Schedule{firstMonday, wednesday}
	exceptions := []models.Exception{{Date: "2024-01-03", MovedToDate: "2024-01-04"}}
	today := date(2024, time.January, 2)

	occ, ok := NextOccurrence(schedules, exceptions, today, 0, Options{})
	require.True(t, ok)
	assert.Equal(t, "2024-01-04", occ.DateString())
	assert.Equal(t, uint(10), occ.Schedule.ID, "default: first active schedule governs")

	occ, ok = NextOccurrence(schedules, exceptions, today, 0, Options{MovedDateInheritsRule: true})
	require.True(t, ok)
	assert.Equal(t, "2024-01-04", occ.DateString())
	assert.Equal(t, uint(20), occ.Schedule.ID, "inherit: the schedule the date was moved from governs")
}

func TestNextOccurrenceTieBreakFirstScheduleWins(t *testing.T) {
	a := firstWednesday()
	a.ID = 1
	b := firstWednesday()
	b.ID = 2

	occ, ok := NextOccurrence([]models.Schedule{a, b}, nil, date(2024, time.January, 1), 0, Options{})

	require.True(t, ok)
	assert.Equal(t, uint(1), occ.Schedule.ID)
}

func TestNextOccurrenceIgnoresInactiveSchedules(t *testing.T) {
	s := firstWednesday()
	s.Active = false

	_, ok := NextOccurrence([]models.Schedule{s}, nil, date(2024, time.January, 1), 0, Options{})
	assert.False(t, ok)
}

func TestNextOccurrenceInactiveOnlyMovedDateYieldsNothing(t *testing.T) {
	s := firstWednesday()
	s.Active = false
	exceptions := []models.Exception{{Date: "2024-01-03", MovedToDate: "2024-01-10"}}

	_, ok := NextOccurrence([]models.Schedule{s}, exceptions, date(2024, time.January, 1), 0, Options{})
	assert.False(t, ok, "a moved date needs an active schedule to govern it")
}

func TestNextOccurrenceEmpty(t *testing.T) {
	_, ok := NextOccurrence(nil, nil, date(2024, time.January, 1), 0, Options{})
	assert.False(t, ok)
}

func TestNextOccurrenceWeekFiveFallsThroughShortMonths(t *testing.T) {
	s := models.Schedule{
		ID:          1,
		DayOfWeek:   3, // Wednesday
		WeekPattern: models.IntList{5},
		Active:      true,
	}

	// April 2024 has no Wednesday on day 29-31; May 29 is the next one.
	occ, ok := NextOccurrence([]models.Schedule{s}, nil, date(2024, time.April, 1), 0, Options{})

	require.True(t, ok)
	assert.Equal(t, "2024-05-29", occ.DateString())
}

func TestNextOccurrenceHorizonBound(t *testing.T) {
	s := models.Schedule{
		DayOfWeek:   3,
		WeekPattern: models.IntList{5},
		Active:      true,
	}

	// Next 5th-Wednesday from 2024-02-01 is 2024-05-29, 118 days out.
	_, ok := NextOccurrence([]models.Schedule{s}, nil, date(2024, time.February, 1), 90, Options{})
	assert.False(t, ok, "beyond the horizon")

	occ, ok := NextOccurrence([]models.Schedule{s}, nil, date(2024, time.February, 1), 120, Options{})
	require.True(t, ok)
	assert.Equal(t, "2024-05-29", occ.DateString())
}
