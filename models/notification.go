package models

import (
	"time"
)

// Notification is the stored copy of a message dispatched to a
// customer or staff member. Dispatch itself is best-effort.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Recipient string    `gorm:"type:varchar(255);not null" json:"recipient"`
	Title     *string   `gorm:"type:varchar(100)" json:"title,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Channel   string    `gorm:"type:varchar(20);not null;default:'email'" json:"channel"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
