package kv

import (
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre el
// almacén clave-valor.
type SupplierRepo struct {
	store storage.Store
	log   *logger.Logger
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(store storage.Store, log *logger.Logger) *SupplierRepo {
	return &SupplierRepo{store: store, log: log}
}

// List devuelve todos los proveedores.
func (r *SupplierRepo) List() []*entity.Supplier {
	return loadCollection[entity.Supplier](r.store, r.log, storage.KeySuppliers)
}

// GetByID devuelve el proveedor con ese ID, o nil si no existe.
func (r *SupplierRepo) GetByID(id string) *entity.Supplier {
	for _, s := range r.List() {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Create añade el proveedor a la colección.
func (r *SupplierRepo) Create(s *entity.Supplier) {
	list := r.List()
	list = append(list, s)
	saveCollection(r.store, r.log, storage.KeySuppliers, list)
}

// Update reemplaza el proveedor con el mismo ID; false si no existe.
func (r *SupplierRepo) Update(s *entity.Supplier) bool {
	list := r.List()
	for i := range list {
		if list[i].ID == s.ID {
			list[i] = s
			saveCollection(r.store, r.log, storage.KeySuppliers, list)
			return true
		}
	}
	return false
}

// Delete elimina el proveedor por ID; false si no existía.
func (r *SupplierRepo) Delete(id string) bool {
	list := r.List()
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			saveCollection(r.store, r.log, storage.KeySuppliers, list)
			return true
		}
	}
	return false
}

// Replace sustituye la colección completa (import).
func (r *SupplierRepo) Replace(list []*entity.Supplier) {
	saveCollection(r.store, r.log, storage.KeySuppliers, list)
}
