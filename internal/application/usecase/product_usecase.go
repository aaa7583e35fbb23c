package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-stock/internal/application/dto"
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
)

// Motivo del movimiento sintetizado al crear un producto con stock inicial.
const initialStockReason = "Stock inicial"

// ProductUseCase casos de uso CRUD para productos. Quantity se maneja vía
// movimientos: Create sintetiza la entrada inicial y Update no la toca.
type ProductUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	alerts    *AlertUseCase
	now       func() time.Time
	newID     func() string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	alerts *AlertUseCase,
) *ProductUseCase {
	return &ProductUseCase{
		products:  products,
		movements: movements,
		alerts:    alerts,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Create crea un producto con ID y timestamps frescos. Si la cantidad
// inicial es mayor que cero, sintetiza exactamente un movimiento de entrada
// con motivo "Stock inicial" por esa cantidad (sin volver a aplicarla al
// producto: ya nace con ella). Después recomputa las alertas.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) *entity.Product {
	now := uc.now()
	p := &entity.Product{
		ID:             uc.newID(),
		Name:           in.Name,
		Family:         in.Family,
		Barcode:        in.Barcode,
		Quantity:       in.Quantity,
		AlertThreshold: in.AlertThreshold,
		ExpiryDate:     in.ExpiryDate,
		SupplierID:     in.SupplierID,
		UnitPrice:      in.UnitPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	uc.products.Create(p)

	if p.Quantity > 0 {
		uc.movements.Create(&entity.Movement{
			ID:        uc.newID(),
			ProductID: p.ID,
			Type:      entity.MovementTypeEntry,
			Quantity:  p.Quantity,
			Reason:    initialStockReason,
			Date:      now,
		})
	}

	uc.alerts.Recompute()
	return p
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() []*entity.Product {
	return uc.products.List()
}

// GetByID devuelve el producto por ID, o nil si no existe.
func (uc *ProductUseCase) GetByID(id string) *entity.Product {
	return uc.products.GetByID(id)
}

// GetByBarcode devuelve el producto por código de barras (captura del
// lector), o nil si ninguno lo lleva.
func (uc *ProductUseCase) GetByBarcode(code string) *entity.Product {
	return uc.products.GetByBarcode(code)
}

// Update reemplaza los campos editables del producto con ese ID y refresca
// UpdatedAt; después recomputa las alertas. No-op silencioso (nil) si el ID
// no existe. Quantity queda como está: solo cambia vía movimientos.
func (uc *ProductUseCase) Update(in dto.UpdateProductRequest) *entity.Product {
	p := uc.products.GetByID(in.ID)
	if p == nil {
		return nil
	}
	p.Name = in.Name
	p.Family = in.Family
	p.Barcode = in.Barcode
	p.AlertThreshold = in.AlertThreshold
	p.ExpiryDate = in.ExpiryDate
	p.SupplierID = in.SupplierID
	p.UnitPrice = in.UnitPrice
	p.UpdatedAt = uc.now()
	uc.products.Update(p)
	uc.alerts.Recompute()
	return p
}

// Delete elimina el producto y, en cascada, todos sus movimientos. Las
// alertas del producto no se tocan aquí: quedan supersedidas en la próxima
// recomputación. No-op silencioso (false) si el ID no existe.
func (uc *ProductUseCase) Delete(id string) bool {
	removed := uc.products.Delete(id)
	uc.movements.DeleteByProduct(id)
	return removed
}
