package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type GetAccount struct {
	repo domain.Repository
}

func NewGetAccount(repo domain.Repository) *GetAccount {
	return &GetAccount{repo: repo}
}

func (uc *GetAccount) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
) (*models.Account, error) {

	if err := access.RequireSelfOrStaff(actor, id); err != nil {
		return nil, err
	}

	acc, err := uc.repo.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAccountNotFound)
		}
		return nil, err
	}
	return acc, nil
}
