package vehicle

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	domain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/imaging"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type UploadPhoto struct {
	repo     domain.Repository
	cache    domain.AvailabilityCache
	photos   domain.PhotoStorage
	maxWidth int
}

// NewUploadPhoto aceita photos nil; nesse caso o upload responde
// photo_storage_disabled.
func NewUploadPhoto(
	repo domain.Repository,
	cache domain.AvailabilityCache,
	photos domain.PhotoStorage,
	maxWidth int,
) *UploadPhoto {
	return &UploadPhoto{
		repo:     repo,
		cache:    cache,
		photos:   photos,
		maxWidth: maxWidth,
	}
}

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
	image io.Reader,
) (*models.Vehicle, error) {

	if err := access.Require(actor, access.RoleStaff); err != nil {
		return nil, err
	}
	if uc.photos == nil {
		return nil, httperr.ErrBusiness(httperr.CodePhotoStorageDisabled)
	}

	v, err := getVehicle(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	body, err := imaging.ToWebP(image, uc.maxWidth)
	if err != nil {
		logger.WarnContext(ctx, "vehicle photo rejected", "vehicle_id", id, logger.Err(err))
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}

	key := fmt.Sprintf("vehicles/%d/%s.webp", v.ID, uuid.NewString())
	url, err := uc.photos.PutPhoto(ctx, key, body, imaging.ContentTypeWebP)
	if err != nil {
		return nil, err
	}

	v.PhotoURL = url
	if err := uc.repo.UpdateVehicleDetails(ctx, v); err != nil {
		return nil, httperr.TranslateStorage(err)
	}
	uc.cache.Invalidate(ctx)

	logger.InfoContext(ctx, "vehicle photo uploaded", "vehicle_id", v.ID, "key", key, "bytes", len(body))
	return getVehicle(ctx, uc.repo, id)
}
