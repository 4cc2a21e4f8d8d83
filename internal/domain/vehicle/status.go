package vehicle

import (
	"strings"

	"github.com/BruksfildServices01/vivacar/internal/httperr"
)

type Status string

const (
	StatusAvailable Status = "Disponivel"
	StatusRented    Status = "Locado"
)

// CanRent exige o carro Disponivel para abrir uma locação.
func CanRent(current Status) error {
	if current != StatusAvailable {
		return httperr.ErrBusiness(httperr.CodeVehicleUnavailable)
	}
	return nil
}

func InitialStatus() Status {
	return StatusAvailable
}

// NormalizePlate guarda a placa em caixa alta, sem espaços nem hífen.
func NormalizePlate(plate string) string {
	p := strings.ToUpper(strings.TrimSpace(plate))
	p = strings.ReplaceAll(p, "-", "")
	return strings.ReplaceAll(p, " ", "")
}
