package rental

import (
	"context"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/rental"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

// --------------------------------------------------
// Active
// --------------------------------------------------

type ListActiveRentals struct {
	repo domain.Repository
}

func NewListActiveRentals(repo domain.Repository) *ListActiveRentals {
	return &ListActiveRentals{repo: repo}
}

func (uc *ListActiveRentals) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]models.Rental, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}
	return uc.repo.ListActiveRentals(ctx)
}

// --------------------------------------------------
// Finalized
// --------------------------------------------------

type ListFinalizedRentals struct {
	repo domain.Repository
}

func NewListFinalizedRentals(repo domain.Repository) *ListFinalizedRentals {
	return &ListFinalizedRentals{repo: repo}
}

// Execute devolve as locações finalizadas, devolução mais recente primeiro.
func (uc *ListFinalizedRentals) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]models.Rental, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}

	rentals, err := uc.repo.ListFinalizedRentals(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortByReturnDesc(rentals)
	return rentals, nil
}

// --------------------------------------------------
// Customer history
// --------------------------------------------------

type CustomerRentals struct {
	Active    []models.Rental
	Finalized []models.Rental
}

type ListCustomerRentals struct {
	repo domain.Repository
}

func NewListCustomerRentals(repo domain.Repository) *ListCustomerRentals {
	return &ListCustomerRentals{repo: repo}
}

// Execute libera o funcionário para qualquer cliente e o cliente só para si.
func (uc *ListCustomerRentals) Execute(
	ctx context.Context,
	actor access.Actor,
	customerID uint,
) (*CustomerRentals, error) {

	if err := access.RequireSelfOrStaff(actor, customerID); err != nil {
		return nil, err
	}

	rentals, err := uc.repo.ListCustomerRentals(ctx, customerID)
	if err != nil {
		return nil, err
	}
	domain.SortForCustomer(rentals)

	active, finalized := domain.Partition(rentals)
	return &CustomerRentals{
		Active:    active,
		Finalized: finalized,
	}, nil
}
