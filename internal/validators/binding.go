package validators

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterBindings adiciona as tags `cpf` e `plate` ao validador do gin.
// Campos vazios passam; use `required` junto quando obrigatório.
func RegisterBindings() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || IsCPF(s)
		})
		_ = v.RegisterValidation("plate", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || IsPlate(s)
		})
	})
}
