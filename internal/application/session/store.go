// Package session persiste la sesión del lado cliente (token + usuario) sobre un
// almacenamiento clave-valor durable.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

// Claves del almacenamiento.
const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

// Store guarda y recupera la sesión. Ambas mitades están presentes o ninguna.
// Con storage nil todas las operaciones son no-op (contextos no interactivos).
type Store struct {
	storage repository.KeyValueStorage
}

// NewStore construye el store. storage puede ser nil.
func NewStore(storage repository.KeyValueStorage) *Store {
	return &Store{storage: storage}
}

// Save escribe token y usuario en una sola operación atómica del almacenamiento.
func (s *Store) Save(ctx context.Context, token string, user entity.User) error {
	if s.storage == nil {
		return nil
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: serializar usuario: %w", err)
	}
	err = s.storage.SetMany(ctx, map[string]string{
		TokenKey: token,
		UserKey:  string(payload),
	})
	if err != nil {
		return fmt.Errorf("session: guardar: %w", err)
	}
	return nil
}

// Load devuelve la sesión guardada. ok=false si falta alguna mitad, el usuario no se
// puede leer o su rol no es válido. Nunca retorna error.
func (s *Store) Load(ctx context.Context) (*entity.Session, bool) {
	if s.storage == nil {
		return nil, false
	}
	token, ok, err := s.storage.Get(ctx, TokenKey)
	if err != nil || !ok || token == "" {
		return nil, false
	}
	raw, ok, err := s.storage.Get(ctx, UserKey)
	if err != nil || !ok {
		return nil, false
	}
	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	if !user.Role.Valid() || user.ID == "" {
		return nil, false
	}
	return &entity.Session{Token: token, User: user}, true
}

// Clear elimina ambas claves. Idempotente.
func (s *Store) Clear(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Delete(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("session: borrar: %w", err)
	}
	return nil
}
