package entity

import "time"

// Direcciones de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada
	MovementTypeExit  = "exit"  // salida
)

// Movement representa un movimiento de stock para un producto.
// Es inmutable una vez creado: el libro mayor es de solo-añadir, sin
// operación de edición ni de reversa.
type Movement struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`     // entry, exit
	Quantity  int       `json:"quantity"` // siempre positivo
	Reason    string    `json:"reason"`
	User      string    `json:"user,omitempty"`
	Date      time.Time `json:"date"`
}
