package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/vivacar/internal/models"
)

func TestFinalizedRentals(t *testing.T) {
	cpf := "123.456.789-09"
	returned := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	days := 3
	price := 270.0

	rentals := []models.Rental{
		{
			ID:               7,
			Customer:         models.Account{Email: "ana@vivacar.com", CPF: &cpf},
			Vehicle:          models.Vehicle{Model: "Onix", Plate: "ABC1D23"},
			StartDate:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:           "Finalizada",
			ActualReturnDate: &returned,
			FinalDays:        &days,
			FinalPrice:       &price,
			Notes:            "arranhão no para-choque",
		},
	}

	out, err := FinalizedRentals(rentals)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetFinalized)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Cliente", rows[0][1])
	assert.Equal(t, []string{
		"7", "ana@vivacar.com", cpf, "Onix", "ABC1D23",
		"2025-01-10", "2025-01-13", "3", "270", "arranhão no para-choque",
	}, rows[1])
}

func TestFinalizedRentals_Empty(t *testing.T) {
	out, err := FinalizedRentals(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetFinalized)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
