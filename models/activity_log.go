package models

import (
	"time"
)

// ActivityLog is an append-only trail of state-changing operations.
// Writes are best-effort; a failed log entry never fails the operation
// it describes.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"type:varchar(255);not null" json:"actor"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
