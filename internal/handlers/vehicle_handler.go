package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/httpresp"
	"github.com/BruksfildServices01/vivacar/internal/middleware"
	ucVehicle "github.com/BruksfildServices01/vivacar/internal/usecase/vehicle"
)

const maxPhotoBytes = 10 << 20

type VehicleHandler struct {
	list      *ucVehicle.ListVehicles
	available *ucVehicle.ListAvailableVehicles
	get       *ucVehicle.GetVehicle
	create    *ucVehicle.CreateVehicle
	update    *ucVehicle.UpdateVehicle
	delete    *ucVehicle.DeleteVehicle
	photo     *ucVehicle.UploadPhoto
}

type VehicleUseCases struct {
	List      *ucVehicle.ListVehicles
	Available *ucVehicle.ListAvailableVehicles
	Get       *ucVehicle.GetVehicle
	Create    *ucVehicle.CreateVehicle
	Update    *ucVehicle.UpdateVehicle
	Delete    *ucVehicle.DeleteVehicle
	Photo     *ucVehicle.UploadPhoto
}

func NewVehicleHandler(uc VehicleUseCases) *VehicleHandler {
	return &VehicleHandler{
		list:      uc.List,
		available: uc.Available,
		get:       uc.Get,
		create:    uc.Create,
		update:    uc.Update,
		delete:    uc.Delete,
		photo:     uc.Photo,
	}
}

type VehicleRequest struct {
	Model     string  `json:"model" binding:"required"`
	Plate     string  `json:"plate" binding:"required,plate"`
	Group     string  `json:"group"`
	Year      *int    `json:"year" binding:"omitempty,gte=1900"`
	DailyRate float64 `json:"daily_rate" binding:"gte=0"`
	PhotoURL  string  `json:"photo_url" binding:"omitempty,url"`
}

func (r VehicleRequest) input() ucVehicle.VehicleInput {
	return ucVehicle.VehicleInput{
		Model:     r.Model,
		Plate:     r.Plate,
		Group:     r.Group,
		Year:      r.Year,
		DailyRate: r.DailyRate,
		PhotoURL:  r.PhotoURL,
	}
}

func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_vehicles")
		return
	}
	httpresp.List(c, vehicles)
}

func (h *VehicleHandler) Available(c *gin.Context) {
	vehicles, err := h.available.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_vehicles")
		return
	}
	httpresp.List(c, vehicles)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	v, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_vehicle")
		return
	}
	httpresp.OK(c, v)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req VehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_vehicle")
		return
	}
	httpresp.Created(c, v)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req VehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_vehicle")
		return
	}
	httpresp.OK(c, v)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.Respond(c, err, "failed_to_delete_vehicle")
		return
	}
	httpresp.NoContent(c)
}

// UploadPhoto espera multipart com o arquivo no campo "photo".
func (h *VehicleHandler) UploadPhoto(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidImage, "Envie a foto no campo photo.")
		return
	}
	if fh.Size > maxPhotoBytes {
		httperr.BadRequest(c, httperr.CodeInvalidImage, "Foto maior que 10 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err, "failed_to_read_photo")
		return
	}
	defer f.Close()

	v, err := h.photo.Execute(c.Request.Context(), middleware.ActorFrom(c), id, f)
	if err != nil {
		httperr.Respond(c, err, "failed_to_upload_photo")
		return
	}
	httpresp.OK(c, v)
}
