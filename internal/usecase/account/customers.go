package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

// --------------------------------------------------
// Create
// --------------------------------------------------

type CreateCustomer struct {
	repo domain.Repository
	opts options
}

func NewCreateCustomer(repo domain.Repository, opts ...Option) *CreateCustomer {
	return &CreateCustomer{repo: repo, opts: buildOptions(opts)}
}

func (uc *CreateCustomer) Execute(
	ctx context.Context,
	actor access.Actor,
	in CustomerInput,
) (*models.Account, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}

	acc, err := createCustomer(ctx, uc.repo, uc.opts, in)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "customer created", "account_id", acc.ID, "by", actor.ID)
	return acc, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

type UpdateCustomer struct {
	repo domain.Repository
	opts options
}

func NewUpdateCustomer(repo domain.Repository, opts ...Option) *UpdateCustomer {
	return &UpdateCustomer{repo: repo, opts: buildOptions(opts)}
}

func (uc *UpdateCustomer) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
	in CustomerInput,
) (*models.Account, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}

	acc, err := getCustomer(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(in.Email)
	cpf := domain.NormalizeCPF(in.CPF)
	if err := uc.opts.validate(email, in.CPF); err != nil {
		return nil, err
	}

	taken, err := uc.repo.EmailOrCPFTaken(ctx, email, cpf, acc.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateKey)
	}

	acc.Email = email
	acc.CPF = cpf
	if in.Password != "" {
		hash, err := domain.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		acc.PasswordHash = hash
	}

	if err := uc.repo.SaveAccount(ctx, acc); err != nil {
		return nil, httperr.TranslateStorage(err)
	}
	return acc, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

type DeleteCustomer struct {
	repo domain.Repository
}

func NewDeleteCustomer(repo domain.Repository) *DeleteCustomer {
	return &DeleteCustomer{repo: repo}
}

// Execute falha com referential_conflict se o cliente tiver locações.
func (uc *DeleteCustomer) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
) error {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return err
	}

	acc, err := getCustomer(ctx, uc.repo, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAccount(ctx, acc); err != nil {
		return httperr.TranslateStorage(err)
	}

	logger.InfoContext(ctx, "customer deleted", "account_id", id, "by", actor.ID)
	return nil
}

// --------------------------------------------------
// List
// --------------------------------------------------

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]models.Account, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}
	return uc.repo.ListAccountsByRole(ctx, string(access.RoleCustomer))
}

func getCustomer(ctx context.Context, repo domain.Repository, id uint) (*models.Account, error) {
	acc, err := repo.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
		}
		return nil, err
	}
	if acc.Role != string(access.RoleCustomer) {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}
	return acc, nil
}
