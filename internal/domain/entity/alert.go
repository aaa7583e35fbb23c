package entity

import "time"

// Tipos de alerta derivada.
const (
	AlertTypeLowStock     = "low_stock"     // stock bajo el umbral
	AlertTypeExpiryNear   = "expiry_near"   // DLC a 7 días o menos
	AlertTypeExpiryPassed = "expiry_passed" // DLC vencida
)

// Alert es un aviso derivado sobre el nivel de stock o la DLC de un
// producto. El conjunto de alertas se regenera completo en cada
// recomputación; no es un libro de solo-añadir.
type Alert struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}
