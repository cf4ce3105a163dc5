package models

import (
	"time"
)

// Payment records a charge verified by the external payment
// processor. Order finalization consumes the reference id as proof;
// this service never initiates or confirms a charge itself.
type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ReferenceID   string     `gorm:"type:varchar(100);unique;not null" json:"reference_id"`
	CustomerID    uint       `gorm:"not null;index" json:"customer_id"`
	Amount        float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentMethod string     `gorm:"type:varchar(30);not null;default:'card'" json:"payment_method"`
	PaymentTime   *time.Time `json:"payment_time,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}
