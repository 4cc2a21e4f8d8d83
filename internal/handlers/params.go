package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vivacar/internal/httperr"
)

// pathID lê o :id da rota; responde 400 e devolve false se inválido.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Dados inválidos.")
		return false
	}
	return true
}
