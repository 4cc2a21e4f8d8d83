package dto

import "github.com/BruksfildServices01/vivacar/internal/models"

type AccountDTO struct {
	ID    uint    `json:"id"`
	Email string  `json:"email"`
	CPF   *string `json:"cpf"`
	Role  string  `json:"role"`
}

func FromAccount(a models.Account) AccountDTO {
	return AccountDTO{
		ID:    a.ID,
		Email: a.Email,
		CPF:   a.CPF,
		Role:  a.Role,
	}
}

func FromAccounts(accounts []models.Account) []AccountDTO {
	out := make([]AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, FromAccount(a))
	}
	return out
}
