// Package inventory implementa el núcleo del libro mayor: el registro de
// movimientos inmutables y la aplicación de su efecto al stock del producto.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-stock/internal/application/dto"
	"github.com/tu-usuario/gestion-stock/internal/application/usecase"
	"github.com/tu-usuario/gestion-stock/internal/domain"
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (entry, exit) y
// mantiene el invariante del libro mayor: la cantidad de un producto es
// max(0, Σ entradas − Σ salidas) aplicadas en orden de registro.
type RegisterMovementUseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
	alerts    *usecase.AlertUseCase
	now       func() time.Time
	newID     func() string
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	movements repository.MovementRepository,
	products repository.ProductRepository,
	alerts *usecase.AlertUseCase,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		movements: movements,
		products:  products,
		alerts:    alerts,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Register valida la entrada, añade el movimiento inmutable al libro mayor
// y aplica su efecto al producto: entrada suma, salida resta con piso en
// cero; refresca UpdatedAt. Si el producto no existe, el movimiento queda
// registrado igualmente y la aplicación es un no-op. Después recomputa las
// alertas.
//
// Violaciones de contrato (cantidad no positiva, dirección desconocida) se
// rechazan con ErrInvalidInput antes de tocar el almacén.
func (uc *RegisterMovementUseCase) Register(in dto.RegisterMovementRequest) (*entity.Movement, error) {
	if in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	mov := &entity.Movement{
		ID:        uc.newID(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		User:      in.User,
		Date:      now,
	}
	uc.movements.Create(mov)

	if p := uc.products.GetByID(in.ProductID); p != nil {
		if in.Type == entity.MovementTypeEntry {
			p.Quantity += in.Quantity
		} else {
			p.Quantity -= in.Quantity
			if p.Quantity < 0 {
				p.Quantity = 0
			}
		}
		p.UpdatedAt = now
		uc.products.Update(p)
	}

	uc.alerts.Recompute()
	return mov, nil
}

// List devuelve el libro mayor completo, en orden de registro.
func (uc *RegisterMovementUseCase) List() []*entity.Movement {
	return uc.movements.List()
}

// ListByProduct devuelve los movimientos de un producto, en orden de registro.
func (uc *RegisterMovementUseCase) ListByProduct(productID string) []*entity.Movement {
	return uc.movements.ListByProduct(productID)
}
