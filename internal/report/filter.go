package report

import (
	"gorm.io/gorm"

	"github.com/SergioReyes42/SistemaContable/internal/models"
)

// Filter reúne los filtros opcionales del reporte. Cada campo presente
// restringe el resultado; los vacíos no imponen condición.
type Filter struct {
	Desde         string `form:"desde"`
	Hasta         string `form:"hasta"`
	Tipo          string `form:"tipo"`
	DispositivoID string `form:"dispositivo_id"`
	Usuario       string `form:"usuario"`
	Q             string `form:"q"`
}

// Apply añade las condiciones del filtro a la consulta. Los límites de
// fecha son inclusivos; con fechas ISO la comparación de texto funciona
// igual en sqlite y en postgres.
func (f Filter) Apply(q *gorm.DB) *gorm.DB {
	if f.Desde != "" {
		q = q.Where("fecha >= ?", f.Desde)
	}
	if f.Hasta != "" {
		q = q.Where("fecha <= ?", f.Hasta)
	}
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.DispositivoID != "" {
		q = q.Where("dispositivo_id LIKE ?", "%"+f.DispositivoID+"%")
	}
	if f.Usuario != "" {
		q = q.Where("usuario LIKE ?", "%"+f.Usuario+"%")
	}
	if f.Q != "" {
		q = q.Where("descripcion LIKE ?", "%"+f.Q+"%")
	}
	return q
}

// Movements ejecuta el filtro, siempre del más reciente al más antiguo.
// El reporte en pantalla y las exportaciones comparten esta consulta.
func Movements(db *gorm.DB, f Filter) ([]models.Movement, error) {
	movs := []models.Movement{}
	err := f.Apply(db.Model(&models.Movement{})).
		Order("id desc").
		Find(&movs).Error
	return movs, err
}
