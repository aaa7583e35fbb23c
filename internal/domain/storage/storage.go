package storage

// Claves fijas del espacio de nombres clave-valor compartido; una por
// colección persistida. Cada clave guarda la colección completa como un
// único array JSON.
const (
	KeyProducts  = "gestion_stock_products"
	KeySuppliers = "gestion_stock_suppliers"
	KeyMovements = "gestion_stock_movements"
	KeyAlerts    = "gestion_stock_alerts"
)

// Keys lista todas las claves de colección, en orden estable.
func Keys() []string {
	return []string{KeyProducts, KeySuppliers, KeyMovements, KeyAlerts}
}

// Store define el puerto de almacenamiento clave-valor (DIP): blobs opacos
// bajo claves fijas, reemplazados por completo en cada escritura. Sin
// escrituras parciales, sin transacciones, sin índices.
//
// Modelo de un solo escritor activo: si dos llamadores lógicos mutaran la
// misma colección a la vez, el último Save gana y descarta en silencio los
// cambios del otro. Aceptado para una herramienta monousuario; cualquier
// adaptación multi-escritor debe sustituir este contrato.
type Store interface {
	// Load devuelve el blob bajo key, o (nil, nil) si está ausente.
	Load(key string) ([]byte, error)
	// Save reemplaza el blob completo bajo key.
	Save(key string, data []byte) error
	// Delete elimina la clave; no-op si no existe.
	Delete(key string) error
}
