package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidClockTime(t *testing.T) {
	assert.True(t, ValidClockTime("00:00"))
	assert.True(t, ValidClockTime("07:05"))
	assert.True(t, ValidClockTime("23:59"))

	assert.False(t, ValidClockTime("24:00"))
	assert.False(t, ValidClockTime("7:05"))
	assert.False(t, ValidClockTime("07:60"))
	assert.False(t, ValidClockTime(""))
}

func TestValidISODate(t *testing.T) {
	assert.True(t, ValidISODate("2024-01-03"))
	assert.True(t, ValidISODate("2024-02-29"))

	assert.False(t, ValidISODate("2023-02-29"))
	assert.False(t, ValidISODate("2024-13-01"))
	assert.False(t, ValidISODate("01-03-2024"))
	assert.False(t, ValidISODate("2024-1-3"))
}

func TestCreateScheduleRequestValidate(t *testing.T) {
	day := 3
	valid := CreateScheduleRequest{
		DayOfWeek:   &day,
		WeekPattern: []int{1, 3},
		StartTime:   "09:00",
		EndTime:     "11:00",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	badDay := 7
	bad.DayOfWeek = &badDay
	assert.Error(t, bad.Validate())

	bad = valid
	bad.StartTime = "9am"
	assert.Error(t, bad.Validate())
}

func TestCreateExceptionRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreateExceptionRequest{Date: "2024-01-03"}).Validate())
	assert.NoError(t, (&CreateExceptionRequest{Date: "2024-01-03", MovedToDate: "2024-01-10"}).Validate())

	assert.Error(t, (&CreateExceptionRequest{Date: "bad"}).Validate())
	assert.Error(t, (&CreateExceptionRequest{Date: "2024-01-03", MovedToDate: "2024-01-03"}).Validate(),
		"moved-to date must differ")
}
