package rental

import "github.com/BruksfildServices01/vivacar/internal/httperr"

// ===============================
// Rental Status
// ===============================

type Status string

const (
	StatusActive    Status = "Ativa"
	StatusFinalized Status = "Finalizada"
)

// CanClose define se uma locação pode ser finalizada (só Ativa -> Finalizada)
func CanClose(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness(httperr.CodeRentalNotActive)
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
