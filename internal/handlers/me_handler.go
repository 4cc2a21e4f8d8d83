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

type MeHandler struct {
	get     *ucAccount.GetAccount
	rentals *ucRental.ListCustomerRentals
}

func NewMeHandler(
	get *ucAccount.GetAccount,
	rentals *ucRental.ListCustomerRentals,
) *MeHandler {
	return &MeHandler{get: get, rentals: rentals}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	acc, err := h.get.Execute(c.Request.Context(), actor, actor.ID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_account")
		return
	}

	httpresp.OK(c, dto.FromAccount(*acc))
}

// Rentals é a área "minhas reservas" do cliente.
func (h *MeHandler) Rentals(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	res, err := h.rentals.Execute(c.Request.Context(), actor, actor.ID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_rentals")
		return
	}

	httpresp.OK(c, dto.CustomerRentalsDTO{
		Active:    dto.FromRentals(res.Active),
		Finalized: dto.FromRentals(res.Finalized),
	})
}
