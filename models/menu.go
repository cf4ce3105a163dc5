package models

import "time"

type Menu struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CategoryID  uint         `gorm:"not null" json:"category_id"`
	Category    MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Name        string       `gorm:"type:varchar(255); not null" json:"name"`
	Price       float64      `gorm:"type:decimal(10,2); not null" json:"price"`
	Available   bool         `gorm:"not null;default:true" json:"available"`
	Description string       `gorm:"type:text" json:"description"`
	ImageUrl    *string      `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updated_at"`
}
