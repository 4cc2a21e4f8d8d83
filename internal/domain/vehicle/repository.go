package vehicle

import (
	"context"

	"github.com/BruksfildServices01/vivacar/internal/models"
)

type Repository interface {
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)

	// PlateTaken ignora exceptID (0 = nenhum) para permitir edição.
	PlateTaken(ctx context.Context, plate string, exceptID uint) (bool, error)

	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	// UpdateVehicleDetails grava os campos editáveis e nunca o status,
	// que pertence à abertura e à devolução.
	UpdateVehicleDetails(ctx context.Context, v *models.Vehicle) error
	DeleteVehicle(ctx context.Context, v *models.Vehicle) error

	// ListVehicles ordena por modelo.
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	ListVehiclesByStatus(ctx context.Context, status Status) ([]models.Vehicle, error)
}

// AvailabilityCache guarda a lista de carros disponíveis usada na abertura
// de locações. Qualquer escrita que altere a frota deve chamar Invalidate.
//
// A lista é versionada: GetAvailable devolve a geração vigente mesmo no
// miss, e SetAvailable grava sob essa geração. Invalidate avança a geração,
// então uma lista lida do banco antes de um Invalidate nunca é servida.
// Geração negativa significa cache indisponível; SetAvailable a ignora.
type AvailabilityCache interface {
	GetAvailable(ctx context.Context) (vehicles []models.Vehicle, gen int64, ok bool)
	SetAvailable(ctx context.Context, gen int64, vehicles []models.Vehicle)
	Invalidate(ctx context.Context)
}

// PhotoStorage persiste a foto já convertida e devolve a URL pública.
type PhotoStorage interface {
	PutPhoto(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
