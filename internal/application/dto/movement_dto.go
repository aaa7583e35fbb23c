package dto

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// Type debe ser entry o exit y Quantity un entero positivo; cualquier otra
// cosa es una violación de contrato que el caso de uso rechaza.
type RegisterMovementRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	User      string `json:"user,omitempty"`
}
