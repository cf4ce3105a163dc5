package models

import (
	"time"
)

// Order lifecycle. Transitions only move forward; an order is never
// deleted once placed.
const (
	OrderStatusConfirmed      = "Confirmed"
	OrderStatusPreparing      = "Preparing"
	OrderStatusReady          = "Ready"
	OrderStatusOutForDelivery = "Out for Delivery"
	OrderStatusDelivered      = "Delivered"
	OrderStatusCompleted      = "Completed"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderRef      string      `gorm:"type:varchar(50);unique;not null" json:"order_ref"`
	CustomerID    uint        `gorm:"not null;index" json:"customer_id"`
	Customer      Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status        string      `gorm:"type:varchar(30);not null;default:'Confirmed'" json:"status"`
	TotalAmount   float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	PointsEarned  int64       `gorm:"not null;default:0" json:"points_earned"`
	PaymentRef    string      `gorm:"type:varchar(100)" json:"payment_ref"`
	FeedbackGiven bool        `gorm:"not null;default:false" json:"feedback_given"`
	RiderID       *uint       `gorm:"index" json:"rider_id,omitempty"`
	Rider         *User       `gorm:"foreignKey:RiderID" json:"rider,omitempty"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

// NextStatuses returns the statuses an order may move to from its
// current one. Empty slice means the order is terminal.
func (o *Order) NextStatuses() []string {
	switch o.Status {
	case OrderStatusConfirmed:
		return []string{OrderStatusPreparing}
	case OrderStatusPreparing:
		return []string{OrderStatusReady}
	case OrderStatusReady:
		return []string{OrderStatusOutForDelivery, OrderStatusCompleted}
	case OrderStatusOutForDelivery:
		return []string{OrderStatusDelivered}
	case OrderStatusDelivered:
		return []string{OrderStatusCompleted}
	}
	return nil
}

// CanMoveTo reports whether the given status is a legal forward step.
func (o *Order) CanMoveTo(status string) bool {
	for _, s := range o.NextStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
