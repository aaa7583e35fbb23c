package kv

import "github.com/tu-usuario/gestion-stock/internal/domain/storage"

var _ storage.Store = (*NopStore)(nil)

// NopStore representa el almacén ausente (contexto no interactivo): toda
// lectura devuelve vacío y toda escritura es un no-op. Ningún método falla.
type NopStore struct{}

// NewNopStore construye el driver nulo.
func NewNopStore() *NopStore { return &NopStore{} }

// Load devuelve siempre (nil, nil): ausente.
func (*NopStore) Load(string) ([]byte, error) { return nil, nil }

// Save descarta los datos.
func (*NopStore) Save(string, []byte) error { return nil }

// Delete es un no-op.
func (*NopStore) Delete(string) error { return nil }
