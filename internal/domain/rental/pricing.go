package rental

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/timezone"
)

// ParseDate lê uma data de calendário YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(timezone.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	return d, nil
}

// ChargeableDays conta dias inteiros entre from e to. Mesmo dia ou
// intervalo invertido cobram 1 diária.
func ChargeableDays(from, to time.Time) int {
	days := int(timezone.CivilDate(to).Sub(timezone.CivilDate(from)).Hours() / 24)
	if days <= 0 {
		return 1
	}
	return days
}

func Price(days int, dailyRate float64) float64 {
	return float64(days) * dailyRate
}
