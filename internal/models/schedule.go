package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// IntList represents a list of small integers stored as a JSON column.
// Used for the week pattern so it round-trips losslessly as e.g. [1,3].
type IntList []int

func (l *IntList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = make([]int, 0)
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for IntList: %T", value)
	}
}

// Contains reports whether n is one of the list's values.
func (l IntList) Contains(n int) bool {
	for _, v := range l {
		if v == n {
			return true
		}
	}
	return false
}

// Schedule represents one recurring street-sweeping rule: a weekday plus
// the set of week-of-month occurrences it applies to (1st through 5th),
// and the posted sweeping time window. Schedules are created and deleted
// whole; there is no partial edit.
type Schedule struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Label       string    `gorm:"size:100" json:"label"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	WeekPattern IntList   `gorm:"type:jsonb;not null" json:"week_pattern"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"` // 24h "HH:MM"
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for the Schedule model
func (Schedule) TableName() string {
	return "schedules"
}

// CreateScheduleRequest represents the data needed to create a new schedule.
// DayOfWeek is a pointer so that Sunday (0) survives the required check.
type CreateScheduleRequest struct {
	Label       string `json:"label"`
	DayOfWeek   *int   `json:"day_of_week" binding:"required"`
	WeekPattern []int  `json:"week_pattern" binding:"required,min=1,dive,min=1,max=5"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Active      *bool  `json:"active"`
}

// Validate applies the checks gin's binding tags cannot express.
func (r *CreateScheduleRequest) Validate() error {
	if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week must be between 0 and 6, got %d", *r.DayOfWeek)
	}
	if !ValidClockTime(r.StartTime) {
		return fmt.Errorf("start_time must be 24-hour HH:MM, got %q", r.StartTime)
	}
	if !ValidClockTime(r.EndTime) {
		return fmt.Errorf("end_time must be 24-hour HH:MM, got %q", r.EndTime)
	}
	return nil
}
