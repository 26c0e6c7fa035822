package models

import (
	"time"
)

// Recipient is an operator who receives a push notification whenever a
// report is completed.
type Recipient struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID        string `gorm:"uniqueIndex;not null" json:"user_id"`
	NotifyEnabled bool   `gorm:"not null;default:true" json:"notify_enabled"`
}
