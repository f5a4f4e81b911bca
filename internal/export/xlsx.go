package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/SergioReyes42/SistemaContable/internal/models"
)

const sheetName = "Movimientos"

// WriteXLSX genera un libro con una sola hoja "Movimientos": encabezado
// en la fila 1 y un movimiento por fila.
func WriteXLSX(w io.Writer, movs []models.Movement) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, m := range movs {
		vals := []interface{}{m.ID, m.Fecha, m.Tipo, m.Descripcion, m.DispositivoID, m.Usuario}
		for col, v := range vals {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}
