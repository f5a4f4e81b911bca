package export

import (
	"encoding/csv"
	"io"

	"github.com/SergioReyes42/SistemaContable/internal/models"
)

// WriteCSV escribe el encabezado y una fila por movimiento.
func WriteCSV(w io.Writer, movs []models.Movement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, m := range movs {
		if err := cw.Write(row(m)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
