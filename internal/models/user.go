package models

import "time"

// User represents a device-identified user. There is no authentication:
// identity is an opaque token the browser generates once and sends on
// every request in the X-Device-ID header.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DeviceID  string    `gorm:"uniqueIndex;size:128;not null" json:"device_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
