// Package sqlite implementa almacenamiento durable del lado cliente sobre SQLite (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

var _ repository.KeyValueStorage = (*KeyValueStorage)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

// KeyValueStorage tabla clave-valor en un archivo SQLite.
type KeyValueStorage struct {
	db *sql.DB
}

// Open abre (o crea) el archivo en path, creando los directorios padre si hace falta.
func Open(path string) (*KeyValueStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("sqlite: crear directorio: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: activar WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: crear esquema: %w", err)
	}
	return &KeyValueStorage{db: db}, nil
}

// Close cierra la base de datos.
func (s *KeyValueStorage) Close() error {
	return s.db.Close()
}

func (s *KeyValueStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite: leer %s: %w", key, err)
	}
	return value, true, nil
}

// SetMany escribe las entradas en una transacción.
func (s *KeyValueStorage) SetMany(ctx context.Context, entries map[string]string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for k, v := range entries {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO kv (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v)
			if err != nil {
				return fmt.Errorf("sqlite: escribir %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *KeyValueStorage) Delete(ctx context.Context, keys ...string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, k); err != nil {
				return fmt.Errorf("sqlite: borrar %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *KeyValueStorage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: confirmar transacción: %w", err)
	}
	return nil
}
