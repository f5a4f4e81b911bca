package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/SergioReyes42/SistemaContable/internal/models"
)

// PDFRenderer genera el documento PDF del reporte. Está detrás de una
// interfaz para que el servidor pueda responder 501 cuando no hay
// generador instalado en lugar de caerse.
type PDFRenderer interface {
	Render(w io.Writer, movs []models.Movement) error
}

// FPDF renderiza con gofpdf: carta apaisada, título, columnas en
// posiciones fijas y salto de página repitiendo el encabezado.
type FPDF struct{}

// Desplazamientos x de cada columna, en puntos desde el borde izquierdo.
var colX = []float64{30, 90, 180, 270, 520, 620}

const (
	lineStep  = 16
	cellLimit = 60
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (FPDF) Render(w io.Writer, movs []models.Movement) error {
	pdf := gofpdf.New("L", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	_, pageH := pdf.GetPageSize()

	// Las coordenadas verticales están expresadas como distancia al
	// borde inferior de la página.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(30, pageH-560, "Reporte de Movimientos")
	pdf.SetFont("Helvetica", "", 10)

	writeHeader := func(y float64) {
		for i, h := range Headers {
			pdf.Text(colX[i], y, tr(h))
		}
	}
	writeHeader(pageH - 540)

	y := pageH - 520
	for _, m := range movs {
		for i, v := range row(m) {
			pdf.Text(colX[i], y, tr(truncate(v, cellLimit)))
		}
		y += lineStep
		if y > pageH-40 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 10)
			writeHeader(pageH - 560)
			y = pageH - 540
		}
	}

	return pdf.Output(w)
}
