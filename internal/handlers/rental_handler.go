package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vivacar/internal/dto"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/httpresp"
	"github.com/BruksfildServices01/vivacar/internal/middleware"
	"github.com/BruksfildServices01/vivacar/internal/report"
	"github.com/BruksfildServices01/vivacar/internal/timezone"
	ucRental "github.com/BruksfildServices01/vivacar/internal/usecase/rental"
)

// ======================================================
// HANDLER
// ======================================================

type RentalHandler struct {
	open      *ucRental.OpenRental
	close     *ucRental.CloseRental
	active    *ucRental.ListActiveRentals
	finalized *ucRental.ListFinalizedRentals
	export    *ucRental.ExportFinalizedRentals
	tz        string
}

func NewRentalHandler(
	open *ucRental.OpenRental,
	closeUC *ucRental.CloseRental,
	active *ucRental.ListActiveRentals,
	finalized *ucRental.ListFinalizedRentals,
	export *ucRental.ExportFinalizedRentals,
	tz string,
) *RentalHandler {
	return &RentalHandler{
		open:      open,
		close:     closeUC,
		active:    active,
		finalized: finalized,
		export:    export,
		tz:        tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OpenRentalRequest struct {
	CustomerID         uint   `json:"customer_id" binding:"required"`
	VehicleID          uint   `json:"vehicle_id" binding:"required"`
	StartDate          string `json:"start_date" binding:"required"`
	ExpectedReturnDate string `json:"expected_return_date" binding:"required"`
	StartOdometer      *int   `json:"start_odometer"`
}

type CloseRentalRequest struct {
	ActualReturnDate string `json:"actual_return_date" binding:"required"`
	FinalOdometer    *int   `json:"final_odometer"`
	Notes            string `json:"notes"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *RentalHandler) Open(c *gin.Context) {
	var req OpenRentalRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.open.Execute(c.Request.Context(), middleware.ActorFrom(c), ucRental.OpenRentalInput{
		CustomerID:         req.CustomerID,
		VehicleID:          req.VehicleID,
		StartDate:          req.StartDate,
		ExpectedReturnDate: req.ExpectedReturnDate,
		StartOdometer:      req.StartOdometer,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_open_rental")
		return
	}

	httpresp.Created(c, dto.FromRental(*r))
}

func (h *RentalHandler) Close(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CloseRentalRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.close.Execute(c.Request.Context(), middleware.ActorFrom(c), ucRental.CloseRentalInput{
		RentalID:         id,
		ActualReturnDate: req.ActualReturnDate,
		FinalOdometer:    req.FinalOdometer,
		Notes:            req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_close_rental")
		return
	}

	httpresp.OK(c, dto.FromRental(*r))
}

func (h *RentalHandler) ListActive(c *gin.Context) {
	rentals, err := h.active.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_rentals")
		return
	}
	httpresp.List(c, dto.FromRentals(rentals))
}

func (h *RentalHandler) ListFinalized(c *gin.Context) {
	rentals, err := h.finalized.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_rentals")
		return
	}
	httpresp.List(c, dto.FromRentals(rentals))
}

func (h *RentalHandler) ExportFinalized(c *gin.Context) {
	body, err := h.export.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_export_rentals")
		return
	}
	filename := "devolucoes-" + timezone.Today(h.tz).Format(timezone.DateLayout) + ".xlsx"
	httpresp.File(c, filename, report.ContentTypeXLSX, body)
}
