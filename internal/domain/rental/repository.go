package rental

import (
	"context"

	"github.com/BruksfildServices01/vivacar/internal/models"
)

type Repository interface {
	// WithinTx roda fn numa transação; qualquer erro desfaz tudo.
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Account / Vehicle --------
	GetAccount(
		ctx context.Context,
		id uint,
	) (*models.Account, error)

	// GetVehicleForUpdate trava a linha do carro até o fim da transação.
	GetVehicleForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Vehicle, error)

	// SaveVehicleStatus grava apenas o status do carro.
	SaveVehicleStatus(
		ctx context.Context,
		v *models.Vehicle,
	) error

	// -------- Rental (state change) --------
	CreateRental(
		ctx context.Context,
		r *models.Rental,
	) error

	GetRentalForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Rental, error)

	SaveRental(
		ctx context.Context,
		r *models.Rental,
	) error

	// -------- Listings (com cliente e carro carregados) --------
	ListActiveRentals(
		ctx context.Context,
	) ([]models.Rental, error)

	// ListFinalizedRentals ordena pela devolução real, mais recente primeiro.
	ListFinalizedRentals(
		ctx context.Context,
	) ([]models.Rental, error)

	// ListCustomerRentals ordena por status e depois início decrescente.
	ListCustomerRentals(
		ctx context.Context,
		customerID uint,
	) ([]models.Rental, error)
}
