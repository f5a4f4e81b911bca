package models

// Tipos que ofrece el formulario. El filtro compara igualdad exacta;
// la API no rechaza otros valores.
const (
	TipoInstalacion   = "Instalación"
	TipoMantenimiento = "Mantenimiento"
	TipoAjuste        = "Ajuste"
)

// Movement es un registro de instalación, mantenimiento o ajuste de un
// dispositivo. Solo se crea, nunca se edita ni se borra.
type Movement struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Fecha         string `gorm:"size:10;not null" json:"fecha"`
	Tipo          string `gorm:"size:50;not null" json:"tipo"`
	Descripcion   string `gorm:"type:text;not null" json:"descripcion"`
	DispositivoID string `gorm:"size:100;not null" json:"dispositivo_id"`
	Usuario       string `gorm:"size:100;not null" json:"usuario"`
}

func (Movement) TableName() string { return "movimientos" }
