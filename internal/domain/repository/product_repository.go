package repository

import "github.com/tu-usuario/gestion-stock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Ningún método devuelve error: los fallos de almacenamiento se degradan a
// colección vacía en el adaptador y la ausencia de un ID es un no-op
// (Update/Delete devuelven false para que el llamador pueda distinguirlo).
type ProductRepository interface {
	List() []*entity.Product
	GetByID(id string) *entity.Product
	GetByBarcode(code string) *entity.Product
	Create(p *entity.Product)
	Update(p *entity.Product) bool
	Delete(id string) bool
	Replace(list []*entity.Product)
}
