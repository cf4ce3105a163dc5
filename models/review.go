package models

import (
	"time"
)

// Review is customer feedback tied to a delivered order. Submitting
// one flips the order's FeedbackGiven flag so it can only happen once.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	OrderID    uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
