package repository

import (
	"context"
	"time"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

// SessionRegistry registro de sesiones del lado servidor: token → usuario.
// Es lo que vuelve verificable un token opaco.
type SessionRegistry interface {
	// Put registra token para user durante ttl.
	Put(ctx context.Context, token string, user entity.User, ttl time.Duration) error
	// Get devuelve (nil, nil) si el token no existe o expiró.
	Get(ctx context.Context, token string) (*entity.User, error)
	// Delete elimina el token; idempotente.
	Delete(ctx context.Context, token string) error
}
