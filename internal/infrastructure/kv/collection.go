// Package kv contiene los drivers del almacén clave-valor y los
// adaptadores de persistencia por colección: cada colección se lee y se
// escribe completa como un array JSON bajo su clave fija.
package kv

import (
	"encoding/json"

	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
	"github.com/tu-usuario/gestion-stock/pkg/logger"
)

// loadCollection lee y decodifica la colección bajo key. Cualquier fallo
// (almacén, JSON ilegible) se degrada a colección vacía con un warn en el
// log; nunca se propaga al llamador (taxonomía de errores del adaptador).
func loadCollection[T any](s storage.Store, log *logger.Logger, key string) []*T {
	raw, err := s.Load(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("lectura de colección falló; se trata como vacía")
		return []*T{}
	}
	if len(raw) == 0 {
		return []*T{}
	}
	var out []*T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("colección corrupta; se trata como vacía")
		return []*T{}
	}
	if out == nil {
		return []*T{}
	}
	return out
}

// saveCollection serializa y reemplaza la colección completa bajo key.
// Los fallos de escritura se registran y se tragan: el último Save gana y
// el contrato no expone errores de almacenamiento.
func saveCollection[T any](s storage.Store, log *logger.Logger, key string, list []*T) {
	data, err := json.Marshal(list)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("serialización de colección falló; escritura descartada")
		return
	}
	if err := s.Save(key, data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("escritura de colección falló; cambios descartados")
	}
}
