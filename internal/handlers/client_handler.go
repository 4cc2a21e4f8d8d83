package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vivacar/internal/dto"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/httpresp"
	"github.com/BruksfildServices01/vivacar/internal/middleware"
	ucAccount "github.com/BruksfildServices01/vivacar/internal/usecase/account"
	ucRental "github.com/BruksfildServices01/vivacar/internal/usecase/rental"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	list    *ucAccount.ListCustomers
	create  *ucAccount.CreateCustomer
	update  *ucAccount.UpdateCustomer
	delete  *ucAccount.DeleteCustomer
	rentals *ucRental.ListCustomerRentals
}

func NewClientHandler(
	list *ucAccount.ListCustomers,
	create *ucAccount.CreateCustomer,
	update *ucAccount.UpdateCustomer,
	del *ucAccount.DeleteCustomer,
	rentals *ucRental.ListCustomerRentals,
) *ClientHandler {
	return &ClientHandler{
		list:    list,
		create:  create,
		update:  update,
		delete:  del,
		rentals: rentals,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Email    string `json:"email" binding:"required,email"`
	CPF      string `json:"cpf" binding:"cpf"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateClientRequest mantém a senha atual quando Password vem vazio.
type UpdateClientRequest struct {
	Email    string `json:"email" binding:"required,email"`
	CPF      string `json:"cpf" binding:"cpf"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	accounts, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_clients")
		return
	}

	httpresp.List(c, dto.FromAccounts(accounts))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), ucAccount.CustomerInput{
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_client")
		return
	}

	httpresp.Created(c, dto.FromAccount(*acc))
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id, ucAccount.CustomerInput{
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_client")
		return
	}

	httpresp.OK(c, dto.FromAccount(*acc))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.Respond(c, err, "failed_to_delete_client")
		return
	}

	httpresp.NoContent(c)
}

func (h *ClientHandler) Rentals(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res, err := h.rentals.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_rentals")
		return
	}

	httpresp.OK(c, dto.CustomerRentalsDTO{
		Active:    dto.FromRentals(res.Active),
		Finalized: dto.FromRentals(res.Finalized),
	})
}
