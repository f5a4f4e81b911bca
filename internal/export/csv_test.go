package export

import (
	"bytes"
	"testing"

	"github.com/SergioReyes42/SistemaContable/internal/models"
)

func sampleMovements() []models.Movement {
	return []models.Movement{
		{ID: 2, Fecha: "2024-02-05", Tipo: models.TipoAjuste, Descripcion: "Reorientación de cámara", DispositivoID: "DVR-001", Usuario: "Carlos"},
		{ID: 1, Fecha: "2024-01-10", Tipo: models.TipoInstalacion, Descripcion: "Cámara nueva en bodega", DispositivoID: "CAM-001", Usuario: "Ana"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleMovements()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	want := "ID,Fecha,Tipo,Descripción,Dispositivo,Usuario\n" +
		"2,2024-02-05,Ajuste,Reorientación de cámara,DVR-001,Carlos\n" +
		"1,2024-01-10,Instalación,Cámara nueva en bodega,CAM-001,Ana\n"
	if buf.String() != want {
		t.Errorf("csv output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	want := "ID,Fecha,Tipo,Descripción,Dispositivo,Usuario\n"
	if buf.String() != want {
		t.Errorf("csv output = %q, want header only", buf.String())
	}
}

func TestWriteCSVQuotesFields(t *testing.T) {
	movs := []models.Movement{
		{ID: 1, Fecha: "2024-01-10", Tipo: models.TipoAjuste, Descripcion: "Ajuste de foco, zoom y brillo", DispositivoID: "CAM-001", Usuario: "Ana"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, movs); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	want := "ID,Fecha,Tipo,Descripción,Dispositivo,Usuario\n" +
		"1,2024-01-10,Ajuste,\"Ajuste de foco, zoom y brillo\",CAM-001,Ana\n"
	if buf.String() != want {
		t.Errorf("csv output:\n%s\nwant:\n%s", buf.String(), want)
	}
}
