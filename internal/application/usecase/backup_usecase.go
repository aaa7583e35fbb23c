package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-stock/internal/application/dto"
	"github.com/tu-usuario/gestion-stock/internal/domain"
	"github.com/tu-usuario/gestion-stock/internal/domain/repository"
	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
)

// BackupUseCase export/import de las cuatro colecciones y borrado total.
type BackupUseCase struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	movements repository.MovementRepository
	alerts    repository.AlertRepository
	store     storage.Store
	now       func() time.Time
}

// NewBackupUseCase construye el caso de uso. Recibe el Store además de los
// repositorios porque Clear opera sobre las claves crudas.
func NewBackupUseCase(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	movements repository.MovementRepository,
	alerts repository.AlertRepository,
	store storage.Store,
) *BackupUseCase {
	return &BackupUseCase{
		products:  products,
		suppliers: suppliers,
		movements: movements,
		alerts:    alerts,
		store:     store,
		now:       time.Now,
	}
}

// Export devuelve las cuatro colecciones más la fecha de exportación.
func (uc *BackupUseCase) Export() *dto.Backup {
	return &dto.Backup{
		Products:   uc.products.List(),
		Suppliers:  uc.suppliers.List(),
		Movements:  uc.movements.List(),
		Alerts:     uc.alerts.List(),
		ExportDate: uc.now(),
	}
}

// ExportJSON serializa el export con sangría, listo para descargar.
func (uc *BackupUseCase) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(uc.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exportar datos: %w", err)
	}
	return data, nil
}

// Import aplica un payload con la misma forma que el export: cada campo
// presente (aunque sea un array vacío) reemplaza su colección por completo;
// cada campo ausente deja la colección destino intacta. Un payload que no
// parsea devuelve error sin aplicar nada.
func (uc *BackupUseCase) Import(data []byte) error {
	var b dto.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: importar datos: %v", domain.ErrInvalidInput, err)
	}
	if b.Products != nil {
		uc.products.Replace(b.Products)
	}
	if b.Suppliers != nil {
		uc.suppliers.Replace(b.Suppliers)
	}
	if b.Movements != nil {
		uc.movements.Replace(b.Movements)
	}
	if b.Alerts != nil {
		uc.alerts.Replace(b.Alerts)
	}
	return nil
}

// Clear borra las cuatro colecciones del almacén.
func (uc *BackupUseCase) Clear() {
	for _, key := range storage.Keys() {
		// Los errores de almacenamiento se tragan, como en todo el adaptador.
		_ = uc.store.Delete(key)
	}
}
