package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto. Quantity es la
// cantidad inicial: si es mayor que cero, el caso de uso sintetiza el
// movimiento de entrada "Stock inicial" correspondiente.
type CreateProductRequest struct {
	Name           string           `json:"name"`
	Family         string           `json:"family"`
	Barcode        string           `json:"barcode,omitempty"`
	Quantity       int              `json:"quantity"`
	AlertThreshold int              `json:"alertThreshold"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	SupplierID     string           `json:"supplierId,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
}

// UpdateProductRequest reemplaza los campos editables del producto con ese
// ID. No incluye Quantity: el stock solo cambia vía movimientos.
type UpdateProductRequest struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Family         string           `json:"family"`
	Barcode        string           `json:"barcode,omitempty"`
	AlertThreshold int              `json:"alertThreshold"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	SupplierID     string           `json:"supplierId,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
}
