package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

var _ repository.KeyValueStorage = (*KeyValueStorage)(nil)

// KeyValueStorage almacenamiento clave-valor en memoria (tests y CLI efímero).
type KeyValueStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKeyValueStorage construye el almacenamiento vacío.
func NewKeyValueStorage() *KeyValueStorage {
	return &KeyValueStorage{data: make(map[string]string)}
}

func (s *KeyValueStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KeyValueStorage) SetMany(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.data[k] = v
	}
	return nil
}

func (s *KeyValueStorage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}
