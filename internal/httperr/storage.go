package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation cobre o erro traduzido pelo gorm (TranslateError) e o
// *pgconn.PgError cru do driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return hasPgCode(err, pgUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return hasPgCode(err, pgForeignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// TranslateStorage converte violações de constraint nos erros de negócio
// correspondentes; demais erros passam intactos.
func TranslateStorage(err error) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err):
		return ErrBusiness(CodeDuplicateKey)
	case IsForeignKeyViolation(err):
		return ErrBusiness(CodeReferentialConflict)
	default:
		return err
	}
}
