package models

import "time"

type Vehicle struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Model     string  `gorm:"size:100;not null;index" json:"model"`
	Plate     string  `gorm:"size:20;uniqueIndex;not null" json:"plate"`
	Group     string  `gorm:"size:50" json:"group"`
	Year      *int    `json:"year"`
	Status    string  `gorm:"size:20;not null;default:'Disponivel';index" json:"status"`
	DailyRate float64 `gorm:"not null;default:0" json:"daily_rate"`
	PhotoURL  string  `gorm:"size:500" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
