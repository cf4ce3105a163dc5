package models

import (
	"time"
)

type PromoCode struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"type:varchar(50);unique;not null" json:"code"`
	DiscountPercent float64   `gorm:"type:decimal(5,2);not null" json:"discount_percent"`
	ExpiresAt       time.Time `gorm:"not null" json:"expires_at"`
	Active          bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// Usable reports whether the code can currently be applied.
func (p *PromoCode) Usable(now time.Time) bool {
	return p.Active && now.Before(p.ExpiresAt)
}
