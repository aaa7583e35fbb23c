package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tu-usuario/gestion-stock/internal/domain/storage"
)

var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implementa el puerto Store sobre SQLite embebido (modernc,
// sin CGO). Cada colección vive como un único blob JSON en kv_blobs; el
// reemplazo completo por clave preserva la atomicidad por colección que
// exige el contrato del adaptador.
type SQLiteStore struct {
	db *sqlx.DB
}

// OpenSQLite abre (o crea) la base en path y asegura el esquema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv_blobs(
  key        TEXT PRIMARY KEY,
  data       BLOB NOT NULL,
  updated_at TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("crear esquema kv: %w", err)
	}
	return nil
}

// Load devuelve el blob bajo key, o (nil, nil) si está ausente.
func (s *SQLiteStore) Load(key string) ([]byte, error) {
	var data []byte
	err := s.db.Get(&data, `SELECT data FROM kv_blobs WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return data, nil
}

// Save reemplaza el blob completo bajo key (upsert).
func (s *SQLiteStore) Save(key string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv_blobs(key, data, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; no-op si no existe.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close cierra la base subyacente.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
