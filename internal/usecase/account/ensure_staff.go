package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type EnsureDefaultStaff struct {
	repo domain.Repository
}

func NewEnsureDefaultStaff(repo domain.Repository) *EnsureDefaultStaff {
	return &EnsureDefaultStaff{repo: repo}
}

// Execute cria o funcionário padrão se o e-mail ainda não existir.
// Rodar de novo não altera a conta existente. O bool indica criação.
func (uc *EnsureDefaultStaff) Execute(
	ctx context.Context,
	email string,
	cpf string,
	password string,
) (*models.Account, bool, error) {

	email = domain.NormalizeEmail(email)

	existing, err := uc.repo.FindByLogin(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hash, err := domain.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	acc := &models.Account{
		Email:        email,
		CPF:          domain.NormalizeCPF(cpf),
		PasswordHash: hash,
		Role:         string(access.RoleStaff),
	}
	if err := uc.repo.CreateAccount(ctx, acc); err != nil {
		return nil, false, err
	}

	logger.InfoContext(ctx, "default staff account created", "account_id", acc.ID, "email", email)
	return acc, true, nil
}
