package models

import (
	"time"
)

// Reservation lifecycle: Pending -> Confirmed/Cancelled -> Completed.
const (
	ReservationStatusPending   = "Pending"
	ReservationStatusConfirmed = "Confirmed"
	ReservationStatusCancelled = "Cancelled"
	ReservationStatusCompleted = "Completed"
)

// Deposit states for reservations that require one.
const (
	DepositStatusNone     = "none"
	DepositStatusPending  = "pending"
	DepositStatusPaid     = "paid"
	DepositStatusRefunded = "refunded"
)

type Reservation struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ConfirmationCode string    `gorm:"type:varchar(50);unique;not null" json:"confirmation_code"`
	CustomerID       *uint     `gorm:"index" json:"customer_id,omitempty"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Email            string    `gorm:"type:varchar(255)" json:"email"`
	Phone            string    `gorm:"type:varchar(50)" json:"phone"`
	Date             string    `gorm:"type:varchar(10);not null;index:idx_reservation_slot" json:"date"`
	Time             string    `gorm:"type:varchar(5);not null;index:idx_reservation_slot" json:"time"`
	Guests           int       `gorm:"not null" json:"guests"`
	Status           string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Notes            string    `gorm:"type:text" json:"notes"`
	TableID          *uint     `gorm:"index" json:"table_id,omitempty"`
	Table            *Table    `gorm:"foreignKey:TableID" json:"table,omitempty"`
	DepositStatus    string    `gorm:"type:varchar(20);not null;default:'none'" json:"deposit_status"`
	ExpiresAt        time.Time `json:"expires_at"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// CountsAgainstCapacity reports whether this reservation occupies
// guest capacity for its slot.
func (r *Reservation) CountsAgainstCapacity() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}
