// Package report gera a planilha de locações finalizadas.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/vivacar/internal/models"
	"github.com/BruksfildServices01/vivacar/internal/timezone"
)

const (
	SheetFinalized  = "Finalizadas"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var finalizedHeader = []any{
	"ID", "Cliente", "CPF", "Modelo", "Placa",
	"Início", "Devolução", "Diárias", "Valor Final", "Observações",
}

// FinalizedRentals escreve uma linha por locação, na ordem recebida. As
// locações precisam vir com Customer e Vehicle carregados.
func FinalizedRentals(rentals []models.Rental) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetFinalized); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(SheetFinalized, "A1", &finalizedHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(SheetFinalized, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, r := range rentals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := rowOf(r)
		if err := f.SetSheetRow(SheetFinalized, cell, &row); err != nil {
			return nil, fmt.Errorf("rental %d: %w", r.ID, err)
		}
	}

	_ = f.SetColWidth(SheetFinalized, "B", "B", 28)
	_ = f.SetColWidth(SheetFinalized, "J", "J", 40)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rowOf(r models.Rental) []any {
	cpf := ""
	if r.Customer.CPF != nil {
		cpf = *r.Customer.CPF
	}

	returned := ""
	if r.ActualReturnDate != nil {
		returned = r.ActualReturnDate.Format(timezone.DateLayout)
	}

	var days any
	if r.FinalDays != nil {
		days = *r.FinalDays
	}

	var price any
	if r.FinalPrice != nil {
		price = *r.FinalPrice
	}

	return []any{
		r.ID,
		r.Customer.Email,
		cpf,
		r.Vehicle.Model,
		r.Vehicle.Plate,
		r.StartDate.Format(timezone.DateLayout),
		returned,
		days,
		price,
		r.Notes,
	}
}
