package models

import "time"

// Service is a bookable catalog entry. Duration drives how many grid
// slots an appointment occupies.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Duration int     `gorm:"not null" json:"duration"` // minutes
	Price    float64 `gorm:"not null" json:"price"`
	ImageURL string  `gorm:"size:255" json:"image_url"`
	Active   bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
