package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/vivacar/internal/models"
	"github.com/BruksfildServices01/vivacar/internal/validators"
)

type Repository interface {
	GetAccount(ctx context.Context, id uint) (*models.Account, error)

	// FindByLogin procura por e-mail ou CPF.
	FindByLogin(ctx context.Context, login string) (*models.Account, error)

	// EmailOrCPFTaken ignora exceptID (0 = nenhum) para permitir edição.
	EmailOrCPFTaken(ctx context.Context, email string, cpf *string, exceptID uint) (bool, error)

	CreateAccount(ctx context.Context, a *models.Account) error
	SaveAccount(ctx context.Context, a *models.Account) error
	DeleteAccount(ctx context.Context, a *models.Account) error

	ListAccountsByRole(ctx context.Context, role string) ([]models.Account, error)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeCPF guarda só os dígitos e devolve nil para CPF vazio; a coluna
// é única mas opcional.
func NormalizeCPF(cpf string) *string {
	c := validators.CPFDigits(cpf)
	if c == "" {
		return nil
	}
	return &c
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
