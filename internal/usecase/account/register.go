package account

import (
	"context"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

// Register é o autocadastro público; sempre cria um cliente.
type Register struct {
	repo domain.Repository
	opts options
}

func NewRegister(repo domain.Repository, opts ...Option) *Register {
	return &Register{
		repo: repo,
		opts: buildOptions(opts),
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in CustomerInput,
) (*models.Account, error) {

	acc, err := createCustomer(ctx, uc.repo, uc.opts, in)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "customer registered", "account_id", acc.ID)
	return acc, nil
}

// createCustomer é compartilhado entre o autocadastro e a inclusão pelo
// funcionário.
func createCustomer(
	ctx context.Context,
	repo domain.Repository,
	opts options,
	in CustomerInput,
) (*models.Account, error) {

	email := domain.NormalizeEmail(in.Email)
	cpf := domain.NormalizeCPF(in.CPF)

	if in.Password == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	if err := opts.validate(email, in.CPF); err != nil {
		return nil, err
	}

	taken, err := repo.EmailOrCPFTaken(ctx, email, cpf, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateKey)
	}

	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		Email:        email,
		CPF:          cpf,
		PasswordHash: hash,
		Role:         string(access.RoleCustomer),
	}
	if err := repo.CreateAccount(ctx, acc); err != nil {
		return nil, httperr.TranslateStorage(err)
	}
	return acc, nil
}
