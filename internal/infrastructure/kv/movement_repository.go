package kv

import (
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre el
// almacén clave-valor. El libro mayor es de solo-añadir: no hay edición de
// movimientos individuales.
type MovementRepo struct {
	store storage.Store
	log   *logger.Logger
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(store storage.Store, log *logger.Logger) *MovementRepo {
	return &MovementRepo{store: store, log: log}
}

// List devuelve el libro mayor completo, en orden de registro.
func (r *MovementRepo) List() []*entity.Movement {
	return loadCollection[entity.Movement](r.store, r.log, storage.KeyMovements)
}

// ListByProduct devuelve los movimientos de un producto, en orden de registro.
func (r *MovementRepo) ListByProduct(productID string) []*entity.Movement {
	out := make([]*entity.Movement, 0)
	for _, m := range r.List() {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// Create añade el movimiento al final del libro mayor.
func (r *MovementRepo) Create(m *entity.Movement) {
	list := r.List()
	list = append(list, m)
	saveCollection(r.store, r.log, storage.KeyMovements, list)
}

// DeleteByProduct elimina en cascada todos los movimientos del producto y
// devuelve cuántos se eliminaron. Los movimientos de otros productos quedan
// intactos.
func (r *MovementRepo) DeleteByProduct(productID string) int {
	list := r.List()
	kept := make([]*entity.Movement, 0, len(list))
	removed := 0
	for _, m := range list {
		if m.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	if removed > 0 {
		saveCollection(r.store, r.log, storage.KeyMovements, kept)
	}
	return removed
}

// Replace sustituye el libro mayor completo (import).
func (r *MovementRepo) Replace(list []*entity.Movement) {
	saveCollection(r.store, r.log, storage.KeyMovements, list)
}
