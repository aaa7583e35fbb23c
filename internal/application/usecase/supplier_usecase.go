package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-stock/internal/application/dto"
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	now       func() time.Time
	newID     func() string
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{
		suppliers: suppliers,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Create crea un proveedor con ID y timestamp frescos.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) *entity.Supplier {
	s := &entity.Supplier{
		ID:        uc.newID(),
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: uc.now(),
	}
	uc.suppliers.Create(s)
	return s
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List() []*entity.Supplier {
	return uc.suppliers.List()
}

// GetByID devuelve el proveedor por ID, o nil si no existe.
func (uc *SupplierUseCase) GetByID(id string) *entity.Supplier {
	return uc.suppliers.GetByID(id)
}

// Update reemplaza los campos del proveedor con ese ID. No-op silencioso
// (nil) si el ID no existe.
func (uc *SupplierUseCase) Update(in dto.UpdateSupplierRequest) *entity.Supplier {
	s := uc.suppliers.GetByID(in.ID)
	if s == nil {
		return nil
	}
	s.Name = in.Name
	s.Contact = in.Contact
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
	uc.suppliers.Update(s)
	return s
}

// Delete elimina el proveedor por ID. No-op silencioso (false) si no existe.
// Los productos que lo referencien conservan el SupplierID colgante; la
// capa de presentación lo muestra como "sin proveedor".
func (uc *SupplierUseCase) Delete(id string) bool {
	return uc.suppliers.Delete(id)
}
