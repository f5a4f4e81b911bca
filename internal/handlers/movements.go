package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/SergioReyes42/SistemaContable/internal/database"
	"github.com/SergioReyes42/SistemaContable/internal/export"
	"github.com/SergioReyes42/SistemaContable/internal/models"
	"github.com/SergioReyes42/SistemaContable/internal/report"

	"github.com/gin-gonic/gin"
)

// PDF es el generador usado por ExportPDF. Si es nil, la exportación
// responde 501 en lugar de fallar.
var PDF export.PDFRenderer = export.FPDF{}

func CreateMovement(c *gin.Context) {
	fecha := strings.TrimSpace(c.PostForm("fecha"))
	tipo := strings.TrimSpace(c.PostForm("tipo"))
	descripcion := strings.TrimSpace(c.PostForm("descripcion"))
	dispositivoID := strings.TrimSpace(c.PostForm("dispositivo_id"))
	usuario := strings.TrimSpace(c.PostForm("usuario"))

	if fecha == "" || tipo == "" || descripcion == "" || dispositivoID == "" || usuario == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Todos los campos son obligatorios"})
		return
	}
	if len([]rune(descripcion)) < 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "La descripción debe tener al menos 5 caracteres"})
		return
	}

	mov := models.Movement{
		Fecha:         fecha,
		Tipo:          tipo,
		Descripcion:   descripcion,
		DispositivoID: dispositivoID,
		Usuario:       usuario,
	}
	if err := database.DB.Create(&mov).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al guardar el movimiento"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movimiento agregado correctamente"})
}

// bindFilter lee los filtros de la query; los tres consumidores (JSON,
// CSV/XLSX, PDF) usan exactamente el mismo predicado.
func bindFilter(c *gin.Context) report.Filter {
	var f report.Filter
	_ = c.ShouldBindQuery(&f)
	return f
}

func Report(c *gin.Context) {
	movs, err := report.Movements(database.DB, bindFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al consultar los movimientos"})
		return
	}
	c.JSON(http.StatusOK, movs)
}

func ExportCSV(c *gin.Context) {
	movs, err := report.Movements(database.DB, bindFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al consultar los movimientos"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, movs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al generar el CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reporte_movimientos.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func ExportXLSX(c *gin.Context) {
	movs, err := report.Movements(database.DB, bindFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al consultar los movimientos"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, movs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al generar el XLSX"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reporte_movimientos.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func ExportPDF(c *gin.Context) {
	if PDF == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"message": "El generador de PDF no está instalado"})
		return
	}

	movs, err := report.Movements(database.DB, bindFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al consultar los movimientos"})
		return
	}

	var buf bytes.Buffer
	if err := PDF.Render(&buf, movs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al generar el PDF"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reporte_movimientos.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
