package kv

import "github.com/tu-usuario/gestion-stock/internal/domain/storage"

var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implementa el puerto Store sobre un mapa en memoria. Útil
// para tests y sesiones efímeras; nada sobrevive al proceso.
//
// Sin locking: el modelo es monohilo con un solo escritor activo.
type MemoryStore struct {
	blobs map[string][]byte
}

// NewMemoryStore construye un almacén en memoria vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load devuelve una copia del blob, o (nil, nil) si la clave no existe.
func (s *MemoryStore) Load(key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save reemplaza el blob completo bajo key (copia defensiva).
func (s *MemoryStore) Save(key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}

// Delete elimina la clave; no-op si no existe.
func (s *MemoryStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}
