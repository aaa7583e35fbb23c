package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es derivada del libro mayor de movimientos: siempre vale
// max(0, Σ entradas − Σ salidas) aplicadas en orden; mutarla fuera del
// registro de movimientos es una violación de contrato.
type Product struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Family         string           `json:"family"` // categoría
	Barcode        string           `json:"barcode,omitempty"`
	Quantity       int              `json:"quantity"`
	AlertThreshold int              `json:"alertThreshold"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"` // DLC
	SupplierID     string           `json:"supplierId,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
