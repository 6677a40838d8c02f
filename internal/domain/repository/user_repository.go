package repository

import (
	"context"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

// UserDirectory define el puerto de lectura del directorio de usuarios (DIP).
// Permite sustituir el directorio estático por un almacén real de credenciales.
type UserDirectory interface {
	// FindByEmail búsqueda exacta (sensible a mayúsculas). Devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.DirectoryEntry, error)
}
