package gestionstock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gestionstock "github.com/tu-usuario/gestion-stock"
	"github.com/tu-usuario/gestion-stock/internal/infrastructure/kv"
	"github.com/tu-usuario/gestion-stock/pkg/config"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

func newManager(t *testing.T) *gestionstock.Manager {
	t.Helper()
	return gestionstock.NewWithStore(kv.NewMemoryStore(), logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo por la fachada
// ──────────────────────────────────────────────────────────────────────────────

// Alta de proveedor y producto, alerta derivada, movimiento, serie y backup:
// el recorrido que hace el colaborador de presentación.
func TestManager_FlujoCompleto(t *testing.T) {
	m := newManager(t)

	prov := m.CreateSupplier(gestionstock.CreateSupplierRequest{Name: "Molinos SA", Contact: "Ana"})
	require.NotEmpty(t, prov.ID)

	p := m.CreateProduct(gestionstock.CreateProductRequest{
		Name:           "Harina",
		Family:         "secos",
		Barcode:        "7610001",
		Quantity:       3,
		AlertThreshold: 5,
		SupplierID:     prov.ID,
	})
	require.NotNil(t, p)
	assert.Equal(t, 3, p.Quantity)

	// La cantidad inicial entra por el libro mayor, no por asignación directa.
	movs := m.MovementsByProduct(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, gestionstock.MovementTypeEntry, movs[0].Type)
	assert.Equal(t, "Stock inicial", movs[0].Reason)

	// 3 <= umbral 5: stock bajo ya vigente.
	alerts := m.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, gestionstock.AlertTypeLowStock, alerts[0].Type)
	assert.True(t, m.MarkAlertRead(alerts[0].ID))

	// Una entrada de 10 repone el stock y disuelve la alerta.
	mov, err := m.RegisterMovement(gestionstock.RegisterMovementRequest{
		ProductID: p.ID,
		Type:      gestionstock.MovementTypeEntry,
		Quantity:  10,
		Reason:    "reposición",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, 13, m.ProductByID(p.ID).Quantity)
	assert.Empty(t, m.Alerts())

	assert.Equal(t, p.ID, m.ProductByBarcode("7610001").ID)

	serie := m.MovementSeries(7)
	require.Len(t, serie, 8)
	hoy := serie[len(serie)-1]
	assert.Equal(t, 13, hoy.Entries, "inicial 3 + entrada 10")
	assert.Equal(t, 13, hoy.Stock)
}

// Export de un manager e import en otro reproduce el estado completo.
func TestManager_ExportImport(t *testing.T) {
	origen := newManager(t)
	p := origen.CreateProduct(gestionstock.CreateProductRequest{
		Name: "Sal", Family: "secos", Quantity: 2, AlertThreshold: 5,
	})

	payload, err := origen.ExportJSON()
	require.NoError(t, err)

	destino := newManager(t)
	require.NoError(t, destino.ImportData(payload))

	require.Len(t, destino.Products(), 1)
	assert.Equal(t, p.ID, destino.Products()[0].ID)
	assert.Len(t, destino.Movements(), 1)
	assert.Len(t, destino.Alerts(), 1, "la alerta de stock bajo viaja en el backup")
}

// ClearAll deja el manager como recién estrenado.
func TestManager_ClearAll(t *testing.T) {
	m := newManager(t)
	m.CreateProduct(gestionstock.CreateProductRequest{Name: "Sal", Family: "secos", Quantity: 2, AlertThreshold: 5})
	m.CreateSupplier(gestionstock.CreateSupplierRequest{Name: "Molinos SA", Contact: "Ana"})

	m.ClearAll()

	assert.Empty(t, m.Products())
	assert.Empty(t, m.Suppliers())
	assert.Empty(t, m.Movements())
	assert.Empty(t, m.Alerts())
}

// New con el driver nulo construye un manager operativo sin persistencia:
// las escrituras no fallan y las lecturas vuelven vacías.
func TestNew_DriverNone(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.Name = "gestion-stock"
	cfg.Log.Level = "error"
	cfg.Storage.Driver = config.DriverNone

	m := gestionstock.New(cfg)
	defer m.Close()

	m.CreateProduct(gestionstock.CreateProductRequest{Name: "Sal", Family: "secos", Quantity: 2})
	assert.Empty(t, m.Products())
}

// Si la ruta sqlite no puede abrirse, la sesión degrada al driver nulo en
// vez de fallar.
func TestNew_SQLiteInaccesibleDegrada(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.Name = "gestion-stock"
	cfg.Log.Level = "error"
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.Path = "/ruta/que/no/existe/gestion.db"

	m := gestionstock.New(cfg)
	defer m.Close()

	m.CreateProduct(gestionstock.CreateProductRequest{Name: "Sal", Family: "secos", Quantity: 2})
	assert.Empty(t, m.Products())
}
