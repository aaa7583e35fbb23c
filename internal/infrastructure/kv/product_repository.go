package kv

import (
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el almacén
// clave-valor (colección completa por escritura).
type ProductRepo struct {
	store storage.Store
	log   *logger.Logger
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store storage.Store, log *logger.Logger) *ProductRepo {
	return &ProductRepo{store: store, log: log}
}

// List devuelve todos los productos (vacío si el almacén está ausente o corrupto).
func (r *ProductRepo) List() []*entity.Product {
	return loadCollection[entity.Product](r.store, r.log, storage.KeyProducts)
}

// GetByID devuelve el producto con ese ID, o nil si no existe.
func (r *ProductRepo) GetByID(id string) *entity.Product {
	for _, p := range r.List() {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// GetByBarcode devuelve el primer producto con ese código de barras, o nil.
func (r *ProductRepo) GetByBarcode(code string) *entity.Product {
	if code == "" {
		return nil
	}
	for _, p := range r.List() {
		if p.Barcode == code {
			return p
		}
	}
	return nil
}

// Create añade el producto a la colección.
func (r *ProductRepo) Create(p *entity.Product) {
	list := r.List()
	list = append(list, p)
	saveCollection(r.store, r.log, storage.KeyProducts, list)
}

// Update reemplaza el producto con el mismo ID. Devuelve false (no-op) si
// el ID no está en la colección.
func (r *ProductRepo) Update(p *entity.Product) bool {
	list := r.List()
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			saveCollection(r.store, r.log, storage.KeyProducts, list)
			return true
		}
	}
	return false
}

// Delete elimina el producto por ID. Devuelve false si no existía.
func (r *ProductRepo) Delete(id string) bool {
	list := r.List()
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			saveCollection(r.store, r.log, storage.KeyProducts, list)
			return true
		}
	}
	return false
}

// Replace sustituye la colección completa (import).
func (r *ProductRepo) Replace(list []*entity.Product) {
	saveCollection(r.store, r.log, storage.KeyProducts, list)
}
