package account

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/models"
	"github.com/BruksfildServices01/vivacar/internal/validators"
)

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute aceita e-mail ou CPF como login. Qualquer divergência responde
// invalid_credentials, sem indicar qual campo errou.
func (uc *Authenticate) Execute(
	ctx context.Context,
	login string,
	password string,
) (*models.Account, error) {

	login = strings.TrimSpace(login)
	switch {
	case strings.Contains(login, "@"):
		login = domain.NormalizeEmail(login)
	case validators.IsCPF(login):
		login = *domain.NormalizeCPF(login)
	}

	acc, err := uc.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if !domain.CheckPassword(acc.PasswordHash, password) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	return acc, nil
}
