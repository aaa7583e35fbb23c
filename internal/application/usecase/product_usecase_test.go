package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-stock/internal/application/dto"
	"github.com/tu-usuario/gestion-stock/internal/application/usecase"
	"github.com/tu-usuario/gestion-stock/internal/domain/entity"
	"github.com/tu-usuario/gestion-stock/internal/infrastructure/kv"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type productFixture struct {
	products  *kv.ProductRepo
	movements *kv.MovementRepo
	alerts    *kv.AlertRepo
	uc        *usecase.ProductUseCase
}

// newProductFixture cablea el caso de uso sobre un almacén en memoria.
func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	store := kv.NewMemoryStore()
	log := logger.Nop()
	products := kv.NewProductRepository(store, log)
	movements := kv.NewMovementRepository(store, log)
	alerts := kv.NewAlertRepository(store, log)
	alertUC := usecase.NewAlertUseCase(alerts, products)
	return &productFixture{
		products:  products,
		movements: movements,
		alerts:    alerts,
		uc:        usecase.NewProductUseCase(products, movements, alertUC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear con cantidad inicial Q > 0 sintetiza exactamente un movimiento de
// entrada de Q con motivo "Stock inicial", sin duplicar la cantidad.
func TestCreate_ConStockInicial(t *testing.T) {
	f := newProductFixture(t)

	p := f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos", Quantity: 8, AlertThreshold: 2})
	require.NotNil(t, p)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 8, p.Quantity, "la cantidad inicial no se aplica dos veces")
	assert.False(t, p.CreatedAt.IsZero())

	movs := f.movements.ListByProduct(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeEntry, movs[0].Type)
	assert.Equal(t, 8, movs[0].Quantity)
	assert.Equal(t, "Stock inicial", movs[0].Reason)

	stored := f.products.GetByID(p.ID)
	require.NotNil(t, stored)
	assert.Equal(t, 8, stored.Quantity)
}

// Crear con cantidad cero no sintetiza ningún movimiento.
func TestCreate_SinStockInicial(t *testing.T) {
	f := newProductFixture(t)

	p := f.uc.Create(dto.CreateProductRequest{Name: "Sal", Family: "secos", Quantity: 0, AlertThreshold: 2})

	assert.Empty(t, f.movements.ListByProduct(p.ID))
}

// Crear dispara la recomputación de alertas: cantidad 3 bajo umbral 5.
func TestCreate_RecomputaAlertas(t *testing.T) {
	f := newProductFixture(t)

	p := f.uc.Create(dto.CreateProductRequest{Name: "Leche", Family: "frescos", Quantity: 3, AlertThreshold: 5})

	alerts := f.alerts.List()
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, alerts[0].Type)
	assert.Equal(t, p.ID, alerts[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Update reemplaza los campos editables, conserva la cantidad y refresca
// el timestamp de modificación.
func TestUpdate_ReemplazaCampos(t *testing.T) {
	f := newProductFixture(t)
	p := f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos", Quantity: 8, AlertThreshold: 2})

	updated := f.uc.Update(dto.UpdateProductRequest{
		ID:             p.ID,
		Name:           "Harina integral",
		Family:         "secos",
		Barcode:        "7610000000001",
		AlertThreshold: 4,
	})

	require.NotNil(t, updated)
	assert.Equal(t, "Harina integral", updated.Name)
	assert.Equal(t, "7610000000001", updated.Barcode)
	assert.Equal(t, 8, updated.Quantity, "Update nunca toca la cantidad")
	assert.False(t, updated.UpdatedAt.Before(p.CreatedAt))

	stored := f.products.GetByID(p.ID)
	assert.Equal(t, "Harina integral", stored.Name)
}

// Update con ID inexistente es un no-op silencioso.
func TestUpdate_IDInexistente(t *testing.T) {
	f := newProductFixture(t)
	f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos", Quantity: 1})

	updated := f.uc.Update(dto.UpdateProductRequest{ID: "no-existe", Name: "Nada"})

	assert.Nil(t, updated)
	require.Len(t, f.products.List(), 1)
	assert.Equal(t, "Harina", f.products.List()[0].Name)
}

// Subir el umbral por encima del stock vía Update dispara la alerta.
func TestUpdate_RecomputaAlertas(t *testing.T) {
	f := newProductFixture(t)
	p := f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos", Quantity: 8, AlertThreshold: 2})
	require.Empty(t, f.alerts.List())

	f.uc.Update(dto.UpdateProductRequest{ID: p.ID, Name: p.Name, Family: p.Family, AlertThreshold: 10})

	alerts := f.alerts.List()
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, alerts[0].Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Delete elimina el producto y todos sus movimientos; los movimientos de
// otros productos quedan intactos.
func TestDelete_CascadaDeMovimientos(t *testing.T) {
	f := newProductFixture(t)
	p1 := f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos", Quantity: 8})
	p2 := f.uc.Create(dto.CreateProductRequest{Name: "Azúcar", Family: "secos", Quantity: 3})

	require.True(t, f.uc.Delete(p1.ID))

	assert.Nil(t, f.products.GetByID(p1.ID))
	assert.Empty(t, f.movements.ListByProduct(p1.ID))
	assert.Len(t, f.movements.ListByProduct(p2.ID), 1, "los movimientos ajenos no se tocan")
}

// Delete con ID inexistente es un no-op silencioso.
func TestDelete_IDInexistente(t *testing.T) {
	f := newProductFixture(t)
	f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos", Quantity: 1})

	assert.False(t, f.uc.Delete("no-existe"))
	assert.Len(t, f.products.List(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

// GetByBarcode resuelve el producto que captura el lector de códigos.
func TestGetByBarcode(t *testing.T) {
	f := newProductFixture(t)
	p := f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos", Barcode: "7610000000001"})
	f.uc.Create(dto.CreateProductRequest{Name: "Sal", Family: "secos"})

	found := f.uc.GetByBarcode("7610000000001")
	require.NotNil(t, found)
	assert.Equal(t, p.ID, found.ID)

	assert.Nil(t, f.uc.GetByBarcode("0000000000000"))
	assert.Nil(t, f.uc.GetByBarcode(""), "código vacío nunca casa con nada")
}

// Los timestamps de creación y modificación nacen iguales.
func TestCreate_Timestamps(t *testing.T) {
	f := newProductFixture(t)
	before := time.Now()

	p := f.uc.Create(dto.CreateProductRequest{Name: "Harina", Family: "secos"})

	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.False(t, p.CreatedAt.Before(before.Add(-time.Second)))
}
