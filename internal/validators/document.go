package validators

import (
	"regexp"
	"strings"
)

var platePattern = regexp.MustCompile(`^[A-Z]{3}-?[0-9][A-Z0-9][0-9]{2}$`)

var cpfPunctuation = strings.NewReplacer(".", "", "-", "", " ", "")

// CPFDigits remove a pontuação de um CPF ("123.456.789-09" vira "12345678909").
func CPFDigits(cpf string) string {
	return cpfPunctuation.Replace(strings.TrimSpace(cpf))
}

// IsCPF confere só o formato: 11 dígitos, com ou sem pontuação.
func IsCPF(cpf string) bool {
	digits := CPFDigits(cpf)
	if len(digits) != 11 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsPlate aceita o padrão antigo (ABC-1234) e o Mercosul (ABC1D23).
func IsPlate(plate string) bool {
	return platePattern.MatchString(strings.ToUpper(strings.TrimSpace(plate)))
}
