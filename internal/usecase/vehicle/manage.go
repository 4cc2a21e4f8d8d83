package vehicle

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/models"
	"github.com/BruksfildServices01/vivacar/internal/validators"
)

type VehicleInput struct {
	Model     string
	Plate     string
	Group     string
	Year      *int
	DailyRate float64
	PhotoURL  string
}

func (in VehicleInput) validate() error {
	if strings.TrimSpace(in.Model) == "" || !validators.IsPlate(in.Plate) {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	if in.DailyRate < 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	if in.Year != nil && *in.Year < 1900 {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	return nil
}

func (in VehicleInput) apply(v *models.Vehicle) {
	v.Model = strings.TrimSpace(in.Model)
	v.Plate = domain.NormalizePlate(in.Plate)
	v.Group = strings.TrimSpace(in.Group)
	v.Year = in.Year
	v.DailyRate = in.DailyRate
	v.PhotoURL = strings.TrimSpace(in.PhotoURL)
}

// --------------------------------------------------
// Create
// --------------------------------------------------

type CreateVehicle struct {
	repo  domain.Repository
	cache domain.AvailabilityCache
}

func NewCreateVehicle(repo domain.Repository, cache domain.AvailabilityCache) *CreateVehicle {
	return &CreateVehicle{repo: repo, cache: cache}
}

func (uc *CreateVehicle) Execute(
	ctx context.Context,
	actor access.Actor,
	in VehicleInput,
) (*models.Vehicle, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	v := &models.Vehicle{Status: string(domain.InitialStatus())}
	in.apply(v)

	taken, err := uc.repo.PlateTaken(ctx, v.Plate, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateKey)
	}

	if err := uc.repo.CreateVehicle(ctx, v); err != nil {
		return nil, httperr.TranslateStorage(err)
	}
	uc.cache.Invalidate(ctx)

	logger.InfoContext(ctx, "vehicle created", "vehicle_id", v.ID, "plate", v.Plate)
	return v, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

type UpdateVehicle struct {
	repo  domain.Repository
	cache domain.AvailabilityCache
}

func NewUpdateVehicle(repo domain.Repository, cache domain.AvailabilityCache) *UpdateVehicle {
	return &UpdateVehicle{repo: repo, cache: cache}
}

// Execute não mexe no status; só abertura e devolução o alteram.
func (uc *UpdateVehicle) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
	in VehicleInput,
) (*models.Vehicle, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	v, err := getVehicle(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	in.apply(v)

	taken, err := uc.repo.PlateTaken(ctx, v.Plate, v.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateKey)
	}

	if err := uc.repo.UpdateVehicleDetails(ctx, v); err != nil {
		return nil, httperr.TranslateStorage(err)
	}
	uc.cache.Invalidate(ctx)

	// relê para devolver o status vigente
	return getVehicle(ctx, uc.repo, id)
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

type DeleteVehicle struct {
	repo  domain.Repository
	cache domain.AvailabilityCache
}

func NewDeleteVehicle(repo domain.Repository, cache domain.AvailabilityCache) *DeleteVehicle {
	return &DeleteVehicle{repo: repo, cache: cache}
}

// Execute falha com referential_conflict se o carro tiver histórico de locação.
func (uc *DeleteVehicle) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
) error {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return err
	}

	v, err := getVehicle(ctx, uc.repo, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteVehicle(ctx, v); err != nil {
		return httperr.TranslateStorage(err)
	}
	uc.cache.Invalidate(ctx)

	logger.InfoContext(ctx, "vehicle deleted", "vehicle_id", id)
	return nil
}

// --------------------------------------------------
// Get
// --------------------------------------------------

type GetVehicle struct {
	repo domain.Repository
}

func NewGetVehicle(repo domain.Repository) *GetVehicle {
	return &GetVehicle{repo: repo}
}

func (uc *GetVehicle) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
) (*models.Vehicle, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}
	return getVehicle(ctx, uc.repo, id)
}

func getVehicle(ctx context.Context, repo domain.Repository, id uint) (*models.Vehicle, error) {
	v, err := repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeVehicleNotFound)
		}
		return nil, err
	}
	return v, nil
}
