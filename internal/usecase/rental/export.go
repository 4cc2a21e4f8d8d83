package rental

import (
	"context"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/report"
)

type ExportFinalizedRentals struct {
	list *ListFinalizedRentals
}

func NewExportFinalizedRentals(list *ListFinalizedRentals) *ExportFinalizedRentals {
	return &ExportFinalizedRentals{list: list}
}

// Execute gera o .xlsx das devoluções na mesma ordem da listagem.
func (uc *ExportFinalizedRentals) Execute(
	ctx context.Context,
	actor access.Actor,
) ([]byte, error) {

	rentals, err := uc.list.Execute(ctx, actor)
	if err != nil {
		return nil, err
	}

	out, err := report.FinalizedRentals(rentals)
	if err != nil {
		logger.ErrorContext(ctx, "finalized rentals export failed", logger.Err(err))
		return nil, err
	}
	return out, nil
}
