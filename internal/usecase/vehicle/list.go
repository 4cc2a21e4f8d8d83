package vehicle

import (
	"context"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type ListVehicles struct {
	repo domain.Repository
}

func NewListVehicles(repo domain.Repository) *ListVehicles {
	return &ListVehicles{repo: repo}
}

func (uc *ListVehicles) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]models.Vehicle, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}
	return uc.repo.ListVehicles(ctx)
}

// ListAvailableVehicles alimenta a escolha de carro na abertura de locação.
// A lista passa pelo cache; abertura, devolução e edições o invalidam.
type ListAvailableVehicles struct {
	repo  domain.Repository
	cache domain.AvailabilityCache
}

func NewListAvailableVehicles(
	repo domain.Repository,
	cache domain.AvailabilityCache,
) *ListAvailableVehicles {
	return &ListAvailableVehicles{repo: repo, cache: cache}
}

func (uc *ListAvailableVehicles) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]models.Vehicle, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}

	cached, gen, ok := uc.cache.GetAvailable(ctx)
	if ok {
		return cached, nil
	}

	vehicles, err := uc.repo.ListVehiclesByStatus(ctx, domain.StatusAvailable)
	if err != nil {
		return nil, err
	}
	uc.cache.SetAvailable(ctx, gen, vehicles)
	return vehicles, nil
}
