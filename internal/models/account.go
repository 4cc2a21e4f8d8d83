package models

import "time"

// Account é o login de funcionários e clientes; Role separa os dois.
type Account struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	CPF          *string `gorm:"size:20;uniqueIndex" json:"cpf"`
	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	Role         string  `gorm:"size:20;not null;default:'cliente';index" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
