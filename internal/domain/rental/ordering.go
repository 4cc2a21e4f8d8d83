package rental

import (
	"sort"

	"github.com/BruksfildServices01/vivacar/internal/models"
)

// SortByReturnDesc ordena devoluções da mais recente para a mais antiga.
// Locações sem data real ficam no fim.
func SortByReturnDesc(rentals []models.Rental) {
	sort.SliceStable(rentals, func(i, j int) bool {
		a, b := rentals[i].ActualReturnDate, rentals[j].ActualReturnDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

// SortForCustomer coloca Ativa antes de Finalizada e, dentro de cada grupo,
// a data de início mais recente primeiro.
func SortForCustomer(rentals []models.Rental) {
	sort.SliceStable(rentals, func(i, j int) bool {
		if rentals[i].Status != rentals[j].Status {
			return rentals[i].Status < rentals[j].Status
		}
		return rentals[i].StartDate.After(rentals[j].StartDate)
	})
}

// Partition separa as locações de um cliente por status, mantendo a ordem.
func Partition(rentals []models.Rental) (active, finalized []models.Rental) {
	active = make([]models.Rental, 0)
	finalized = make([]models.Rental, 0)
	for _, r := range rentals {
		switch Status(r.Status) {
		case StatusActive:
			active = append(active, r)
		case StatusFinalized:
			finalized = append(finalized, r)
		}
	}
	return active, finalized
}
