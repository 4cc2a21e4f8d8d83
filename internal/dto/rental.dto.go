package dto

import (
	"github.com/BruksfildServices01/vivacar/internal/models"
	"github.com/BruksfildServices01/vivacar/internal/timezone"
)

type RentalCustomerDTO struct {
	ID    uint    `json:"id"`
	Email string  `json:"email"`
	CPF   *string `json:"cpf"`
}

type RentalVehicleDTO struct {
	ID        uint    `json:"id"`
	Model     string  `json:"model"`
	Plate     string  `json:"plate"`
	DailyRate float64 `json:"daily_rate"`
	PhotoURL  string  `json:"photo_url,omitempty"`
}

// RentalDTO expõe as datas como YYYY-MM-DD.
type RentalDTO struct {
	ID                 uint     `json:"id"`
	Status             string   `json:"status"`
	StartDate          string   `json:"start_date"`
	ExpectedReturnDate string   `json:"expected_return_date"`
	StartOdometer      *int     `json:"start_odometer"`
	TotalPrice         float64  `json:"total_price"`
	ActualReturnDate   *string  `json:"actual_return_date"`
	FinalOdometer      *int     `json:"final_odometer"`
	FinalDays          *int     `json:"final_days"`
	FinalPrice         *float64 `json:"final_price"`
	Notes              string   `json:"notes,omitempty"`

	CustomerID uint               `json:"customer_id"`
	Customer   *RentalCustomerDTO `json:"customer,omitempty"`
	VehicleID  uint               `json:"vehicle_id"`
	Vehicle    *RentalVehicleDTO  `json:"vehicle,omitempty"`
}

// FromRental só inclui cliente e carro quando vieram carregados.
func FromRental(r models.Rental) RentalDTO {
	out := RentalDTO{
		ID:                 r.ID,
		Status:             r.Status,
		StartDate:          r.StartDate.Format(timezone.DateLayout),
		ExpectedReturnDate: r.ExpectedReturnDate.Format(timezone.DateLayout),
		StartOdometer:      r.StartOdometer,
		TotalPrice:         r.TotalPrice,
		FinalOdometer:      r.FinalOdometer,
		FinalDays:          r.FinalDays,
		FinalPrice:         r.FinalPrice,
		Notes:              r.Notes,
		CustomerID:         r.CustomerID,
		VehicleID:          r.VehicleID,
	}

	if r.ActualReturnDate != nil {
		d := r.ActualReturnDate.Format(timezone.DateLayout)
		out.ActualReturnDate = &d
	}
	if r.Customer.ID != 0 {
		out.Customer = &RentalCustomerDTO{
			ID:    r.Customer.ID,
			Email: r.Customer.Email,
			CPF:   r.Customer.CPF,
		}
	}
	if r.Vehicle.ID != 0 {
		out.Vehicle = &RentalVehicleDTO{
			ID:        r.Vehicle.ID,
			Model:     r.Vehicle.Model,
			Plate:     r.Vehicle.Plate,
			DailyRate: r.Vehicle.DailyRate,
			PhotoURL:  r.Vehicle.PhotoURL,
		}
	}
	return out
}

func FromRentals(rentals []models.Rental) []RentalDTO {
	out := make([]RentalDTO, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, FromRental(r))
	}
	return out
}

type CustomerRentalsDTO struct {
	Active    []RentalDTO `json:"active"`
	Finalized []RentalDTO `json:"finalized"`
}
