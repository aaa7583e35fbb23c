package kv

import (
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre el almacén
// clave-valor.
type AlertRepo struct {
	store storage.Store
	log   *logger.Logger
}

// NewAlertRepository construye el adaptador de persistencia para alertas.
func NewAlertRepository(store storage.Store, log *logger.Logger) *AlertRepo {
	return &AlertRepo{store: store, log: log}
}

// List devuelve todas las alertas vigentes.
func (r *AlertRepo) List() []*entity.Alert {
	return loadCollection[entity.Alert](r.store, r.log, storage.KeyAlerts)
}

// Replace sustituye el conjunto completo (recomputación o import).
func (r *AlertRepo) Replace(list []*entity.Alert) {
	saveCollection(r.store, r.log, storage.KeyAlerts, list)
}

// MarkRead marca la alerta como leída; false (no-op) si el ID no existe.
func (r *AlertRepo) MarkRead(id string) bool {
	list := r.List()
	for _, a := range list {
		if a.ID == id {
			a.Read = true
			saveCollection(r.store, r.log, storage.KeyAlerts, list)
			return true
		}
	}
	return false
}

// Delete elimina la alerta por ID; false si no existía.
func (r *AlertRepo) Delete(id string) bool {
	list := r.List()
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			saveCollection(r.store, r.log, storage.KeyAlerts, list)
			return true
		}
	}
	return false
}
