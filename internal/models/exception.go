package models

import (
	"fmt"
	"time"
)

// Exception overrides a single calendar date: either the sweeping that would
// normally happen on Date is cancelled, or it is relocated to MovedToDate.
// Exceptions are created and deleted, never mutated.
type Exception struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Date        string    `gorm:"size:10;not null" json:"date"` // ISO "YYYY-MM-DD"
	MovedToDate string    `gorm:"size:10" json:"moved_to_date"`
	Reason      string    `gorm:"size:255" json:"reason"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for the Exception model
func (Exception) TableName() string {
	return "exceptions"
}

// CreateExceptionRequest represents the data needed to create a new exception
type CreateExceptionRequest struct {
	Date        string `json:"date" binding:"required"`
	MovedToDate string `json:"moved_to_date"`
	Reason      string `json:"reason"`
}

// Validate applies the checks gin's binding tags cannot express.
func (r *CreateExceptionRequest) Validate() error {
	if !ValidISODate(r.Date) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", r.Date)
	}
	if r.MovedToDate != "" {
		if !ValidISODate(r.MovedToDate) {
			return fmt.Errorf("moved_to_date must be YYYY-MM-DD, got %q", r.MovedToDate)
		}
		if r.MovedToDate == r.Date {
			return fmt.Errorf("moved_to_date must differ from date")
		}
	}
	return nil
}
