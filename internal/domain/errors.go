package domain

import "errors"

// Errores de dominio centinela. Son pocos a propósito: la ausencia de un ID
// es un no-op silencioso (nil/false), no un error, y los fallos de
// almacenamiento los degrada el adaptador a colección vacía o no-op.
var (
	// ErrInvalidInput marca una violación de contrato en la entrada
	// (cantidad no positiva, dirección desconocida, payload ilegible).
	ErrInvalidInput = errors.New("entrada inválida")
)
