package cache

import (
	"context"

	domain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

// Noop é usado quando REDIS_URL não está configurada.
type Noop struct{}

func (Noop) GetAvailable(context.Context) ([]models.Vehicle, int64, bool) { return nil, -1, false }
func (Noop) SetAvailable(context.Context, int64, []models.Vehicle)        {}
func (Noop) Invalidate(context.Context)                                   {}

var _ domain.AvailabilityCache = Noop{}
