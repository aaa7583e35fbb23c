// Package gestionstock es la fachada de la biblioteca de seguimiento de
// inventario: productos con stock, proveedores, libro mayor de movimientos
// y alertas derivadas (stock bajo, DLC próxima o vencida), con persistencia
// clave-valor de colecciones JSON completas.
//
// La capa de presentación (formularios, captura del lector de códigos de
// barras) es un colaborador externo: produce registros validados y cadenas
// de código de barras, y consume esta superficie de datos. Aquí no hay
// endpoints de red ni CLI.
//
// Modelo monohilo síncrono, un solo escritor activo: cada operación es un
// leer-modificar-escribir directo contra el almacén, sin locking ni colas.
package gestionstock

import (
	"io"

	"github.com/tu-usuario/gestion-stock/internal/application/analytics"
	"github.com/tu-usuario/gestion-stock/internal/application/dto"
	"github.com/tu-usuario/gestion-stock/internal/application/inventory"
	"github.com/tu-usuario/gestion-stock/internal/application/usecase"
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
	"github.com/tu-usuario/gestion-stock/internal/infrastructure/kv"
	"github.com/tu-usuario/gestion-stock/pkg/config"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

// Tipos de la superficie API, reexportados para el colaborador.
type (
	Product  = entity.Product
	Supplier = entity.Supplier
	Movement = entity.Movement
	Alert    = entity.Alert

	CreateProductRequest    = dto.CreateProductRequest
	UpdateProductRequest    = dto.UpdateProductRequest
	CreateSupplierRequest   = dto.CreateSupplierRequest
	UpdateSupplierRequest   = dto.UpdateSupplierRequest
	RegisterMovementRequest = dto.RegisterMovementRequest
	SeriesPoint             = dto.SeriesPoint
	Backup                  = dto.Backup

	// Store es el puerto de almacenamiento inyectable (blobs JSON de
	// colección completa bajo claves fijas).
	Store = storage.Store
)

// Direcciones de movimiento y tipos de alerta.
const (
	MovementTypeEntry = entity.MovementTypeEntry
	MovementTypeExit  = entity.MovementTypeExit

	AlertTypeLowStock     = entity.AlertTypeLowStock
	AlertTypeExpiryNear   = entity.AlertTypeExpiryNear
	AlertTypeExpiryPassed = entity.AlertTypeExpiryPassed
)

// Manager cablea repositorios y casos de uso sobre un Store y expone la
// superficie API completa del colaborador.
type Manager struct {
	log   *logger.Logger
	store storage.Store

	products  *usecase.ProductUseCase
	suppliers *usecase.SupplierUseCase
	alerts    *usecase.AlertUseCase
	ledger    *inventory.RegisterMovementUseCase
	series    *analytics.SeriesUseCase
	backup    *usecase.BackupUseCase
}

// Open carga la configuración del entorno y construye el Manager.
func Open() (*Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

// New construye el Manager con el driver de almacenamiento que indique la
// configuración. Si el almacén durable no puede abrirse, la sesión degrada
// al driver nulo: toda lectura vacía, toda escritura no-op, ningún error al
// llamador (contrato del adaptador de almacenamiento).
func New(cfg *config.Config) *Manager {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	var store storage.Store
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		st, err := kv.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Storage.Path).
				Msg("almacén sqlite no disponible; la sesión opera sin persistencia")
			store = kv.NewNopStore()
		} else {
			store = st
		}
	case config.DriverNone:
		store = kv.NewNopStore()
	default:
		store = kv.NewMemoryStore()
	}

	log.Info().
		Str("app", cfg.App.Name).
		Str("driver", cfg.Storage.Driver).
		Msg("almacén de inventario inicializado")

	return NewWithStore(store, log)
}

// NewWithStore construye el Manager sobre un Store inyectado (tests del
// colaborador, almacenes a medida).
func NewWithStore(store storage.Store, log *logger.Logger) *Manager {
	productRepo := kv.NewProductRepository(store, log)
	supplierRepo := kv.NewSupplierRepository(store, log)
	movementRepo := kv.NewMovementRepository(store, log)
	alertRepo := kv.NewAlertRepository(store, log)

	alertUC := usecase.NewAlertUseCase(alertRepo, productRepo)

	return &Manager{
		log:       log,
		store:     store,
		products:  usecase.NewProductUseCase(productRepo, movementRepo, alertUC),
		suppliers: usecase.NewSupplierUseCase(supplierRepo),
		alerts:    alertUC,
		ledger:    inventory.NewRegisterMovementUseCase(movementRepo, productRepo, alertUC),
		series:    analytics.NewSeriesUseCase(movementRepo, productRepo),
		backup:    usecase.NewBackupUseCase(productRepo, supplierRepo, movementRepo, alertRepo, store),
	}
}

// Close libera el almacén subyacente si lo necesita (driver sqlite).
func (m *Manager) Close() error {
	if c, ok := m.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────

// CreateProduct crea un producto; con cantidad inicial > 0 sintetiza el
// movimiento de entrada "Stock inicial" y recomputa las alertas.
func (m *Manager) CreateProduct(in CreateProductRequest) *Product {
	return m.products.Create(in)
}

// Products devuelve todos los productos.
func (m *Manager) Products() []*Product { return m.products.List() }

// ProductByID devuelve el producto por ID, o nil.
func (m *Manager) ProductByID(id string) *Product { return m.products.GetByID(id) }

// ProductByBarcode devuelve el producto por código de barras, o nil.
func (m *Manager) ProductByBarcode(code string) *Product { return m.products.GetByBarcode(code) }

// UpdateProduct reemplaza los campos editables; nil si el ID no existe
// (no-op silencioso). Quantity solo cambia vía movimientos.
func (m *Manager) UpdateProduct(in UpdateProductRequest) *Product { return m.products.Update(in) }

// DeleteProduct elimina el producto y en cascada sus movimientos.
func (m *Manager) DeleteProduct(id string) bool { return m.products.Delete(id) }

// ── Proveedores ──────────────────────────────────────────────────────────

// CreateSupplier crea un proveedor.
func (m *Manager) CreateSupplier(in CreateSupplierRequest) *Supplier { return m.suppliers.Create(in) }

// Suppliers devuelve todos los proveedores.
func (m *Manager) Suppliers() []*Supplier { return m.suppliers.List() }

// SupplierByID devuelve el proveedor por ID, o nil.
func (m *Manager) SupplierByID(id string) *Supplier { return m.suppliers.GetByID(id) }

// UpdateSupplier reemplaza los campos del proveedor; nil si el ID no existe.
func (m *Manager) UpdateSupplier(in UpdateSupplierRequest) *Supplier { return m.suppliers.Update(in) }

// DeleteSupplier elimina el proveedor por ID.
func (m *Manager) DeleteSupplier(id string) bool { return m.suppliers.Delete(id) }

// ── Libro mayor ──────────────────────────────────────────────────────────

// RegisterMovement añade un movimiento inmutable y aplica su efecto al
// stock del producto. ErrInvalidInput si la dirección o la cantidad violan
// el contrato.
func (m *Manager) RegisterMovement(in RegisterMovementRequest) (*Movement, error) {
	return m.ledger.Register(in)
}

// Movements devuelve el libro mayor completo.
func (m *Manager) Movements() []*Movement { return m.ledger.List() }

// MovementsByProduct devuelve los movimientos de un producto.
func (m *Manager) MovementsByProduct(productID string) []*Movement {
	return m.ledger.ListByProduct(productID)
}

// ── Alertas ──────────────────────────────────────────────────────────────

// Alerts devuelve las alertas vigentes.
func (m *Manager) Alerts() []*Alert { return m.alerts.List() }

// RecomputeAlerts fuerza la reconstrucción del conjunto de alertas (las
// mutaciones de productos y movimientos ya lo hacen por sí solas).
func (m *Manager) RecomputeAlerts() []*Alert { return m.alerts.Recompute() }

// MarkAlertRead marca la alerta como leída; false si el ID no existe.
func (m *Manager) MarkAlertRead(id string) bool { return m.alerts.MarkRead(id) }

// DeleteAlert elimina la alerta; false si el ID no existe.
func (m *Manager) DeleteAlert(id string) bool { return m.alerts.Delete(id) }

// ── Serie de movimientos ─────────────────────────────────────────────────

// MovementSeries devuelve la serie diaria (entradas, salidas, stock total)
// desde hoy−windowDays hasta hoy inclusive.
func (m *Manager) MovementSeries(windowDays int) []SeriesPoint { return m.series.Series(windowDays) }

// ── Export / Import / Clear ──────────────────────────────────────────────

// ExportData devuelve las cuatro colecciones más la fecha de exportación.
func (m *Manager) ExportData() *Backup { return m.backup.Export() }

// ExportJSON serializa el export con sangría.
func (m *Manager) ExportJSON() ([]byte, error) { return m.backup.ExportJSON() }

// ImportData aplica un payload con la forma del export; los campos
// presentes reemplazan su colección, los ausentes no se tocan.
func (m *Manager) ImportData(data []byte) error { return m.backup.Import(data) }

// ClearAll borra las cuatro colecciones del almacén.
func (m *Manager) ClearAll() { m.backup.Clear() }
