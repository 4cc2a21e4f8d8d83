package account

import (
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/validators"
)

// CustomerInput serve a cadastro, inclusão e edição de clientes. Na edição
// uma senha vazia mantém a atual.
type CustomerInput struct {
	Email    string
	CPF      string
	Password string
}

// Option ajusta as validações compartilhadas pelos use cases de conta.
type Option func(*options)

type options struct {
	emailDomainValid func(email string) bool
}

// WithEmailDomainCheck liga a consulta DNS ao domínio do e-mail.
func WithEmailDomainCheck(check func(email string) bool) Option {
	return func(o *options) {
		o.emailDomainValid = check
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) validate(email, cpf string) error {
	if !validators.IsEmailSyntaxValid(email) {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	if cpf != "" && !validators.IsCPF(cpf) {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	if o.emailDomainValid != nil && !o.emailDomainValid(email) {
		return httperr.ErrBusiness(httperr.CodeInvalidEmailDomain)
	}
	return nil
}
