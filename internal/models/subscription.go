package models

import "time"

// PushSubscription stores one browser push endpoint for a user. A user can
// have several (one per browser/device). The endpoint plus the two keys is
// everything the Web Push protocol needs to reach that browser.
type PushSubscription struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_endpoint" json:"user_id"`
	Endpoint  string    `gorm:"size:500;not null;uniqueIndex:idx_user_endpoint" json:"endpoint"`
	P256dh    string    `gorm:"size:255;not null" json:"p256dh"`
	Auth      string    `gorm:"size:255;not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for the PushSubscription model
func (PushSubscription) TableName() string {
	return "push_subscriptions"
}

// SubscribeRequest mirrors the JSON a browser's PushManager produces.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}
