// Package access concentra a checagem de papel feita uma única vez por
// operação. O ator autenticado chega explicitamente em cada chamada.
package access

import "github.com/BruksfildServices01/vivacar/internal/httperr"

type Role string

const (
	RoleStaff    Role = "funcionario"
	RoleCustomer Role = "cliente"
)

func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleCustomer
}

type Actor struct {
	ID   uint
	Role Role
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// Require falha com forbidden quando o ator não tem o papel exigido.
func Require(a Actor, role Role) error {
	if a.ID == 0 || a.Role != role {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}

// RequireSelfOrStaff libera funcionários e o próprio dono do registro.
func RequireSelfOrStaff(a Actor, accountID uint) error {
	if a.ID == 0 {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if a.IsStaff() || a.ID == accountID {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}
