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

// ======================================================
// INPUT
// ======================================================

type OpenRentalInput struct {
	CustomerID uint
	VehicleID  uint

	StartDate          string
	ExpectedReturnDate string
	StartOdometer      *int
}

// ======================================================
// USE CASE
// ======================================================

type OpenRental struct {
	repo  domain.Repository
	cache vehicle.AvailabilityCache
}

func NewOpenRental(
	repo domain.Repository,
	cache vehicle.AvailabilityCache,
) *OpenRental {
	return &OpenRental{
		repo:  repo,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *OpenRental) Execute(
	ctx context.Context,
	actor access.Actor,
	in OpenRentalInput,
) (*models.Rental, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Datas de calendário
	// --------------------------------------------------
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	expected, err := domain.ParseDate(in.ExpectedReturnDate)
	if err != nil {
		return nil, err
	}
	if in.StartOdometer != nil && *in.StartOdometer < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	// --------------------------------------------------
	// Cliente + carro travado + locação, tudo ou nada
	// --------------------------------------------------
	var created *models.Rental
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		customer, err := tx.GetAccount(ctx, in.CustomerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeCustomerNotFound)
			}
			return err
		}
		if customer.Role != string(access.RoleCustomer) {
			return httperr.ErrBusiness(httperr.CodeCustomerNotFound)
		}

		car, err := tx.GetVehicleForUpdate(ctx, in.VehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeVehicleUnavailable)
			}
			return err
		}

		r, err := domain.Open(customer.ID, car, start, expected, in.StartOdometer)
		if err != nil {
			return err
		}

		if err := tx.CreateRental(ctx, r); err != nil {
			return httperr.TranslateStorage(err)
		}
		if err := tx.SaveVehicleStatus(ctx, car); err != nil {
			return err
		}

		r.Customer = *customer
		r.Vehicle = *car
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	logger.InfoContext(ctx, "rental opened",
		"rental_id", created.ID,
		"customer_id", created.CustomerID,
		"vehicle_id", created.VehicleID,
		"total_price", created.TotalPrice,
	)

	return created, nil
}
