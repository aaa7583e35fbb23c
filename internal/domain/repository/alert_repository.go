package repository

import "github.com/tu-usuario/gestion-stock/internal/domain/entity"

// AlertRepository define el puerto de persistencia para las alertas
// derivadas. Replace sustituye el conjunto completo (la recomputación
// regenera desde cero).
type AlertRepository interface {
	List() []*entity.Alert
	Replace(list []*entity.Alert)
	MarkRead(id string) bool
	Delete(id string) bool
}
