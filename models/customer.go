package models

import (
	"time"
)

// Membership tiers, ordered. A customer's tier is always derived from
// the current loyalty point total, never stored independently of it.
const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	LoyaltyPoints int64     `gorm:"not null;default:0" json:"loyalty_points"`
	Tier          string    `gorm:"type:varchar(20);not null;default:'Bronze'" json:"tier"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
	Orders        []Order   `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}
