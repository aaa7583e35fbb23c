package dto

import (
	"time"

	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
)

// Backup es el formato de export/import: un único objeto JSON con las
// cuatro colecciones más la fecha de exportación.
//
// En el import, un campo ausente (slice nil tras el unmarshal) deja la
// colección destino intacta; un campo presente, aunque sea un array vacío,
// la reemplaza por completo.
type Backup struct {
	Products   []*entity.Product  `json:"products"`
	Suppliers  []*entity.Supplier `json:"suppliers"`
	Movements  []*entity.Movement `json:"movements"`
	Alerts     []*entity.Alert    `json:"alerts"`
	ExportDate time.Time          `json:"exportDate"`
}
