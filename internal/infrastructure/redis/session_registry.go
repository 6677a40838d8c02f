package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

// DefaultSessionPrefix prefijo de las claves de sesión.
const DefaultSessionPrefix = "commodities:session:"

var _ repository.SessionRegistry = (*SessionRegistry)(nil)

// SessionRegistry guarda token → usuario (JSON) con TTL nativo de Redis.
type SessionRegistry struct {
	client *goredis.Client
	prefix string
}

// NewSessionRegistry construye el registro. prefix vacío usa DefaultSessionPrefix.
func NewSessionRegistry(client *goredis.Client, prefix string) *SessionRegistry {
	if prefix == "" {
		prefix = DefaultSessionPrefix
	}
	return &SessionRegistry{client: client, prefix: prefix}
}

// Key devuelve la clave Redis de token.
func (r *SessionRegistry) Key(token string) string {
	return r.prefix + token
}

// Put registra la sesión; expira sola al cumplirse ttl.
func (r *SessionRegistry) Put(ctx context.Context, token string, user entity.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("redis: serializar sesión: %w", err)
	}
	if err := r.client.Set(ctx, r.Key(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: guardar sesión: %w", err)
	}
	return nil
}

// Get devuelve (nil, nil) si la sesión no existe o expiró.
func (r *SessionRegistry) Get(ctx context.Context, token string) (*entity.User, error) {
	raw, err := r.client.Get(ctx, r.Key(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: leer sesión: %w", err)
	}
	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// Registro ilegible: se trata como sesión inexistente.
		return nil, nil
	}
	return &user, nil
}

// Delete elimina la sesión. Idempotente.
func (r *SessionRegistry) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.Key(token)).Err(); err != nil {
		return fmt.Errorf("redis: eliminar sesión: %w", err)
	}
	return nil
}
