package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/vivacar/internal/config"
	"github.com/BruksfildServices01/vivacar/internal/dto"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/models"
	ucAccount "github.com/BruksfildServices01/vivacar/internal/usecase/account"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	register     *ucAccount.Register
	authenticate *ucAccount.Authenticate
	config       *config.Config
}

func NewAuthHandler(
	register *ucAccount.Register,
	authenticate *ucAccount.Authenticate,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		authenticate: authenticate,
		config:       cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	CPF      string `json:"cpf" binding:"cpf"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest aceita e-mail ou CPF em Login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  dto.AccountDTO `json:"user"`
	Token string         `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.register.Execute(c.Request.Context(), ucAccount.CustomerInput{
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_register")
		return
	}

	h.respondWithToken(c, http.StatusCreated, acc)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.authenticate.Execute(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		httperr.Respond(c, err, "failed_to_login")
		return
	}

	h.respondWithToken(c, http.StatusOK, acc)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, acc *models.Account) {
	token, err := h.generateToken(acc)
	if err != nil {
		httperr.Respond(c, err, "failed_to_generate_token")
		return
	}

	c.JSON(status, AuthResponse{
		User:  dto.FromAccount(*acc),
		Token: token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(acc *models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  acc.ID,
		"role": acc.Role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
