package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vivacar/internal/logger"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

type businessMapping struct {
	status  int
	message string
}

var businessErrors = map[string]businessMapping{
	CodeInvalidInput:         {http.StatusBadRequest, "Dados inválidos."},
	CodeVehicleUnavailable:   {http.StatusConflict, "Carro não está disponível para locação."},
	CodeRentalNotActive:      {http.StatusConflict, "Locação já finalizada."},
	CodeRentalNotFound:       {http.StatusNotFound, "Locação não encontrada."},
	CodeCustomerNotFound:     {http.StatusNotFound, "Cliente não encontrado."},
	CodeVehicleNotFound:      {http.StatusNotFound, "Carro não encontrado."},
	CodeAccountNotFound:      {http.StatusNotFound, "Usuário não encontrado."},
	CodeDuplicateKey:         {http.StatusConflict, "Já existe um cadastro com estes dados (E-mail, CPF ou placa)."},
	CodeReferentialConflict:  {http.StatusConflict, "Registro possui locações vinculadas e não pode ser excluído."},
	CodeForbidden:            {http.StatusForbidden, "Acesso não permitido."},
	CodeInvalidCredentials:   {http.StatusUnauthorized, "Dados incorretos. Verifique e tente novamente."},
	CodePhotoStorageDisabled: {http.StatusServiceUnavailable, "Upload de fotos não configurado."},
	CodeInvalidImage:         {http.StatusBadRequest, "Imagem inválida."},
	CodeInvalidEmailDomain:   {http.StatusBadRequest, "O domínio do e-mail informado não parece ser válido."},
}

// Respond escreve err como resposta JSON. Erros de negócio viram o status
// correspondente; qualquer outro erro é logado e devolvido como 500 com
// fallbackCode.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if code, ok := BusinessCode(err); ok {
		m, known := businessErrors[code]
		if !known {
			BadRequest(c, code, "Operação não permitida.")
			return
		}
		Write(c, m.status, code, m.message)
		return
	}

	logger.ErrorContext(c.Request.Context(), "request failed",
		"path", c.FullPath(),
		"error_code", fallbackCode,
		logger.Err(err),
	)
	Internal(c, fallbackCode, "Erro interno. Tente novamente.")
}
