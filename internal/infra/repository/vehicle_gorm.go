package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type VehicleGormRepository struct {
	db *gorm.DB
}

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

func (r *VehicleGormRepository) GetVehicle(
	ctx context.Context,
	id uint,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleGormRepository) PlateTaken(
	ctx context.Context,
	plate string,
	exceptID uint,
) (bool, error) {

	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("plate = ?", plate)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VehicleGormRepository) CreateVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// editableVehicleColumns exclui status.
var editableVehicleColumns = []string{
	"model", "plate", "group", "year", "daily_rate", "photo_url",
}

func (r *VehicleGormRepository) UpdateVehicleDetails(
	ctx context.Context,
	v *models.Vehicle,
) error {
	res := r.db.WithContext(ctx).
		Model(v).
		Select(editableVehicleColumns).
		Updates(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleGormRepository) DeleteVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Delete(v).Error
}

func (r *VehicleGormRepository) ListVehicles(
	ctx context.Context,
) ([]models.Vehicle, error) {

	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).
		Order("model ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleGormRepository) ListVehiclesByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Vehicle, error) {

	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("model ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Compile-time check
var _ domain.Repository = (*VehicleGormRepository)(nil)
