package rental

import (
	"time"

	"github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Open monta a locação Ativa e marca o carro como Locado. O preço usa a
// diária do carro neste momento.
func Open(
	customerID uint,
	car *models.Vehicle,
	start time.Time,
	expectedReturn time.Time,
	startOdometer *int,
) (*models.Rental, error) {
	if err := vehicle.CanRent(vehicle.Status(car.Status)); err != nil {
		return nil, err
	}

	days := ChargeableDays(start, expectedReturn)

	r := &models.Rental{
		CustomerID:         customerID,
		VehicleID:          car.ID,
		StartDate:          start,
		ExpectedReturnDate: expectedReturn,
		StartOdometer:      startOdometer,
		TotalPrice:         Price(days, car.DailyRate),
		Status:             string(InitialStatus()),
	}

	car.Status = string(vehicle.StatusRented)
	return r, nil
}

// Close registra a devolução, cobra pela diária atual do carro e o libera.
func Close(
	r *models.Rental,
	car *models.Vehicle,
	returnedAt time.Time,
	finalOdometer *int,
	notes string,
) error {
	if err := CanClose(Status(r.Status)); err != nil {
		return err
	}

	days := ChargeableDays(r.StartDate, returnedAt)
	price := Price(days, car.DailyRate)

	r.Status = string(StatusFinalized)
	r.ActualReturnDate = &returnedAt
	r.FinalOdometer = finalOdometer
	r.FinalDays = &days
	r.FinalPrice = &price
	r.Notes = notes

	car.Status = string(vehicle.StatusAvailable)
	return nil
}
