package repository

import "context"

// KeyValueStorage área clave-valor durable del lado cliente (equivalente a localStorage).
type KeyValueStorage interface {
	// Get devuelve ok=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// SetMany escribe todas las entradas o ninguna.
	SetMany(ctx context.Context, entries map[string]string) error
	// Delete elimina las claves en una sola operación. Idempotente.
	Delete(ctx context.Context, keys ...string) error
}
