package repository

import "github.com/tu-usuario/gestion-stock/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro mayor
// de movimientos. Solo-añadir: no hay Update ni Delete individual; el único
// borrado es la cascada por producto.
type MovementRepository interface {
	List() []*entity.Movement
	ListByProduct(productID string) []*entity.Movement
	Create(m *entity.Movement)
	DeleteByProduct(productID string) int
	Replace(list []*entity.Movement)
}
