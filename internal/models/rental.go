package models

import "time"

type Rental struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint    `gorm:"not null;index" json:"customer_id"`
	Customer   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	VehicleID uint    `gorm:"not null;index" json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StartDate          time.Time `gorm:"type:date;not null" json:"start_date"`
	ExpectedReturnDate time.Time `gorm:"type:date;not null" json:"expected_return_date"`
	StartOdometer      *int      `json:"start_odometer"`
	TotalPrice         float64   `gorm:"not null" json:"total_price"`

	Status string `gorm:"size:20;not null;default:'Ativa';index" json:"status"`

	// Preenchidos só na devolução.
	ActualReturnDate *time.Time `gorm:"type:date" json:"actual_return_date"`
	FinalOdometer    *int       `json:"final_odometer"`
	FinalDays        *int       `json:"final_days"`
	FinalPrice       *float64   `json:"final_price"`
	Notes            string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
