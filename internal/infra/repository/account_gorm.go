package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetAccount(
	ctx context.Context,
	id uint,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).First(&acc, id).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountGormRepository) FindByLogin(
	ctx context.Context,
	login string,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).
		Where("email = ? OR cpf = ?", login, login).
		First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountGormRepository) EmailOrCPFTaken(
	ctx context.Context,
	email string,
	cpf *string,
	exceptID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).Model(&models.Account{})
	if cpf != nil {
		q = q.Where("(email = ? OR cpf = ?)", email, *cpf)
	} else {
		q = q.Where("email = ?", email)
	}
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateAccount(
	ctx context.Context,
	a *models.Account,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountGormRepository) SaveAccount(
	ctx context.Context,
	a *models.Account,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountGormRepository) DeleteAccount(
	ctx context.Context,
	a *models.Account,
) error {
	return r.db.WithContext(ctx).Delete(a).Error
}

func (r *AccountGormRepository) ListAccountsByRole(
	ctx context.Context,
	role string,
) ([]models.Account, error) {

	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("email ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
