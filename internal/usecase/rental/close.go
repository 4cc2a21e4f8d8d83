package rental

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/rental"
	"github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type CloseRentalInput struct {
	RentalID         uint
	ActualReturnDate string
	FinalOdometer    *int
	Notes            string
}

type CloseRental struct {
	repo  domain.Repository
	cache vehicle.AvailabilityCache
}

func NewCloseRental(
	repo domain.Repository,
	cache vehicle.AvailabilityCache,
) *CloseRental {
	return &CloseRental{
		repo:  repo,
		cache: cache,
	}
}

// Execute finaliza uma locação Ativa e devolve o carro à frota.
func (uc *CloseRental) Execute(
	ctx context.Context,
	actor access.Actor,
	in CloseRentalInput,
) (*models.Rental, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}

	returnedAt, err := domain.ParseDate(in.ActualReturnDate)
	if err != nil {
		return nil, err
	}
	if in.FinalOdometer != nil && *in.FinalOdometer < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	var closed *models.Rental
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		r, err := tx.GetRentalForUpdate(ctx, in.RentalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeRentalNotFound)
			}
			return err
		}
		if err := domain.CanClose(domain.Status(r.Status)); err != nil {
			return err
		}

		car, err := tx.GetVehicleForUpdate(ctx, r.VehicleID)
		if err != nil {
			return err
		}

		if err := domain.Close(r, car, returnedAt, in.FinalOdometer, in.Notes); err != nil {
			return err
		}

		if err := tx.SaveRental(ctx, r); err != nil {
			return err
		}
		if err := tx.SaveVehicleStatus(ctx, car); err != nil {
			return err
		}

		r.Vehicle = *car
		closed = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	logger.InfoContext(ctx, "rental closed",
		"rental_id", closed.ID,
		"vehicle_id", closed.VehicleID,
		"final_days", *closed.FinalDays,
		"final_price", *closed.FinalPrice,
	)

	return closed, nil
}
