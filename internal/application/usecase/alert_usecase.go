package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-stock/internal/domain/alerting"
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
)

// AlertUseCase gestiona las alertas derivadas: recomputación completa,
// listado, marcar leída y borrado.
type AlertUseCase struct {
	alerts   repository.AlertRepository
	products repository.ProductRepository
	now      func() time.Time
	newID    func() string
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alerts repository.AlertRepository, products repository.ProductRepository) *AlertUseCase {
	return &AlertUseCase{
		alerts:   alerts,
		products: products,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// Recompute reconstruye el conjunto de alertas desde cero a partir de la
// colección actual de productos y reemplaza al por mayor el conjunto
// almacenado, conservando el flag de leída por (ProductID, Type).
// Determinista e idempotente módulo IDs y timestamps.
func (uc *AlertUseCase) Recompute() []*entity.Alert {
	fresh := alerting.Compute(uc.products.List(), uc.now(), uc.newID)
	alerting.PreserveReadFlags(uc.alerts.List(), fresh)
	uc.alerts.Replace(fresh)
	return fresh
}

// List devuelve las alertas vigentes.
func (uc *AlertUseCase) List() []*entity.Alert {
	return uc.alerts.List()
}

// MarkRead marca la alerta como leída. No-op silencioso (false) si el ID
// no existe.
func (uc *AlertUseCase) MarkRead(id string) bool {
	return uc.alerts.MarkRead(id)
}

// Delete elimina la alerta por ID. No-op silencioso (false) si no existe.
func (uc *AlertUseCase) Delete(id string) bool {
	return uc.alerts.Delete(id)
}
