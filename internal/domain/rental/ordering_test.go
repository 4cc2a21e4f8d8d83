package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/vivacar/internal/models"
)

func ptr(t time.Time) *time.Time { return &t }

func TestSortByReturnDesc(t *testing.T) {
	rentals := []models.Rental{
		{ID: 1, ActualReturnDate: ptr(date(2025, 1, 3))},
		{ID: 2},
		{ID: 3, ActualReturnDate: ptr(date(2025, 3, 1))},
		{ID: 4, ActualReturnDate: ptr(date(2025, 2, 1))},
	}

	SortByReturnDesc(rentals)

	ids := make([]uint, 0, len(rentals))
	for _, r := range rentals {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []uint{3, 4, 1, 2}, ids)
}

func TestSortForCustomerAndPartition(t *testing.T) {
	rentals := []models.Rental{
		{ID: 1, Status: string(StatusFinalized), StartDate: date(2025, 1, 1)},
		{ID: 2, Status: string(StatusActive), StartDate: date(2025, 2, 1)},
		{ID: 3, Status: string(StatusFinalized), StartDate: date(2025, 3, 1)},
		{ID: 4, Status: string(StatusActive), StartDate: date(2025, 4, 1)},
	}

	SortForCustomer(rentals)
	active, finalized := Partition(rentals)

	assert.Equal(t, uint(4), rentals[0].ID)
	assert.Len(t, active, 2)
	assert.Len(t, finalized, 2)
	assert.Equal(t, uint(4), active[0].ID)
	assert.Equal(t, uint(2), active[1].ID)
	assert.Equal(t, uint(3), finalized[0].ID)
	assert.Equal(t, uint(1), finalized[1].ID)
}

func TestPartition_Empty(t *testing.T) {
	active, finalized := Partition(nil)

	assert.NotNil(t, active)
	assert.NotNil(t, finalized)
	assert.Empty(t, active)
	assert.Empty(t, finalized)
}
