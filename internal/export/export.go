// Package export genera los archivos descargables del reporte de
// movimientos: CSV, XLSX y PDF. Los tres reciben las mismas filas ya
// filtradas y usan los mismos encabezados.
package export

import (
	"strconv"

	"github.com/SergioReyes42/SistemaContable/internal/models"
)

var Headers = []string{"ID", "Fecha", "Tipo", "Descripción", "Dispositivo", "Usuario"}

func row(m models.Movement) []string {
	return []string{
		strconv.FormatUint(uint64(m.ID), 10),
		m.Fecha,
		m.Tipo,
		m.Descripcion,
		m.DispositivoID,
		m.Usuario,
	}
}
