package models

import (
	"time"
)

// Setting is the single mutable configuration record for the
// restaurant. One row; admin edits it through the settings endpoint.
type Setting struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	MaxTableCapacity        int       `gorm:"not null;default:50" json:"max_table_capacity"`
	DepositAmount           float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"deposit_amount"`
	CancellationWindowHours int       `gorm:"not null;default:24" json:"cancellation_window_hours"`
	CreatedAt               time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt               time.Time `gorm:"not null" json:"updated_at"`
}
