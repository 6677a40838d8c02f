package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

var _ repository.SessionRegistry = (*SessionRegistry)(nil)

type sessionRecord struct {
	user      entity.User
	expiresAt time.Time
}

// SessionRegistry registro de sesiones en memoria. Los expirados se eliminan al consultarlos
// y en cada Put.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]sessionRecord
	now      func() time.Time
}

// NewSessionRegistry construye el registro. now nil usa time.Now.
func NewSessionRegistry(now func() time.Time) *SessionRegistry {
	if now == nil {
		now = time.Now
	}
	return &SessionRegistry{sessions: make(map[string]sessionRecord), now: now}
}

// Put registra el token y barre los registros expirados.
func (r *SessionRegistry) Put(_ context.Context, token string, user entity.User, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for t, rec := range r.sessions {
		if !now.Before(rec.expiresAt) {
			delete(r.sessions, t)
		}
	}
	r.sessions[token] = sessionRecord{user: user, expiresAt: now.Add(ttl)}
	return nil
}

// Get devuelve el usuario del token; los expirados se eliminan al consultarlos.
func (r *SessionRegistry) Get(_ context.Context, token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	if !r.now().Before(rec.expiresAt) {
		delete(r.sessions, token)
		return nil, nil
	}
	u := rec.user
	return &u, nil
}

// Delete elimina el token.
func (r *SessionRegistry) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}
