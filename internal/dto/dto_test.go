package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vivacar/internal/models"
)

func TestFromRental(t *testing.T) {
	returned := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	out := FromRental(models.Rental{
		ID:                 3,
		CustomerID:         2,
		VehicleID:          9,
		Vehicle:            models.Vehicle{ID: 9, Model: "Onix", Plate: "ABC1D23"},
		StartDate:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpectedReturnDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Status:             "Finalizada",
		ActualReturnDate:   &returned,
	})

	assert.Equal(t, "2025-01-01", out.StartDate)
	assert.Equal(t, "2025-01-02", out.ExpectedReturnDate)
	require.NotNil(t, out.ActualReturnDate)
	assert.Equal(t, "2025-01-04", *out.ActualReturnDate)
	assert.Nil(t, out.Customer)
	require.NotNil(t, out.Vehicle)
	assert.Equal(t, "ABC1D23", out.Vehicle.Plate)
}

func TestFromRentals_EmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, FromRentals(nil))
	assert.NotNil(t, FromAccounts(nil))
}
