package models

import (
	"fmt"
	"time"
)

// Default reminder times, applied when a user's settings row is first created.
const (
	DefaultNightBefore = "20:00"
	DefaultMorningOf   = "07:00"
)

// ReminderSetting holds a user's two reminder times. Exactly one row per
// user; it is created lazily with defaults on first read and only ever
// updated by replacing both fields together.
type ReminderSetting struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	NightBefore string    `gorm:"size:5;not null;default:'20:00'" json:"night_before"`
	MorningOf   string    `gorm:"size:5;not null;default:'07:00'" json:"morning_of"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for the ReminderSetting model
func (ReminderSetting) TableName() string {
	return "reminder_settings"
}

// UpdateRemindersRequest replaces both reminder times at once
type UpdateRemindersRequest struct {
	NightBefore string `json:"night_before" binding:"required"`
	MorningOf   string `json:"morning_of" binding:"required"`
}

// Validate applies the checks gin's binding tags cannot express.
func (r *UpdateRemindersRequest) Validate() error {
	if !ValidClockTime(r.NightBefore) {
		return fmt.Errorf("night_before must be 24-hour HH:MM, got %q", r.NightBefore)
	}
	if !ValidClockTime(r.MorningOf) {
		return fmt.Errorf("morning_of must be 24-hour HH:MM, got %q", r.MorningOf)
	}
	return nil
}
