package models

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationKind identifies which of the two reminders a log entry is for
type NotificationKind string

const (
	KindNightBefore NotificationKind = "night_before"
	KindMorningOf   NotificationKind = "morning_of"
)

// NotificationLog records that a reminder was dispatched for a sweeping date.
// The unique (user, kind, sweep_date) index is the idempotency guard: the
// worker inserts with ON CONFLICT DO NOTHING and only sends when the insert
// actually created the row, so a key can never be delivered twice no matter
// how many ticks observe the same minute. Rows are never updated or deleted.
type NotificationLog struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_user_kind_date" json:"user_id"`
	Kind      NotificationKind `gorm:"size:20;not null;uniqueIndex:idx_user_kind_date" json:"kind"`
	SweepDate string           `gorm:"size:10;not null;uniqueIndex:idx_user_kind_date" json:"sweep_date"`
	Payload   datatypes.JSON   `gorm:"type:jsonb" json:"payload"`
	SentAt    time.Time        `gorm:"not null" json:"sent_at"`
}

// TableName specifies the table name for the NotificationLog model
func (NotificationLog) TableName() string {
	return "notification_log"
}
