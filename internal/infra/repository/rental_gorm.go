package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/vivacar/internal/domain/rental"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type RentalGormRepository struct {
	db *gorm.DB
}

func NewRentalGormRepository(db *gorm.DB) *RentalGormRepository {
	return &RentalGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *RentalGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RentalGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Account / Vehicle
// --------------------------------------------------

func (r *RentalGormRepository) GetAccount(
	ctx context.Context,
	id uint,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).First(&acc, id).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *RentalGormRepository) GetVehicleForUpdate(
	ctx context.Context,
	id uint,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *RentalGormRepository) SaveVehicleStatus(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).
		Model(v).
		Update("status", v.Status).Error
}

// --------------------------------------------------
// Rental (open / close)
// --------------------------------------------------

func (r *RentalGormRepository) CreateRental(
	ctx context.Context,
	rental *models.Rental,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rental).Error
}

func (r *RentalGormRepository) GetRentalForUpdate(
	ctx context.Context,
	id uint,
) (*models.Rental, error) {

	var rental models.Rental
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rental, id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *RentalGormRepository) SaveRental(
	ctx context.Context,
	rental *models.Rental,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(rental).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *RentalGormRepository) ListActiveRentals(
	ctx context.Context,
) ([]models.Rental, error) {

	var rentals []models.Rental
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Where("status = ?", string(domain.StatusActive)).
		Order("start_date ASC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalGormRepository) ListFinalizedRentals(
	ctx context.Context,
) ([]models.Rental, error) {

	var rentals []models.Rental
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Where("status = ?", string(domain.StatusFinalized)).
		Order("actual_return_date DESC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalGormRepository) ListCustomerRentals(
	ctx context.Context,
	customerID uint,
) ([]models.Rental, error) {

	var rentals []models.Rental
	if err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("customer_id = ?", customerID).
		Order("status ASC").
		Order("start_date DESC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

// Compile-time check
var _ domain.Repository = (*RentalGormRepository)(nil)
