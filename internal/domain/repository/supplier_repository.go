package repository

import "github.com/tu-usuario/gestion-stock/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	List() []*entity.Supplier
	GetByID(id string) *entity.Supplier
	Create(s *entity.Supplier)
	Update(s *entity.Supplier) bool
	Delete(id string) bool
	Replace(list []*entity.Supplier)
}
