package memory

import (
	"context"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

var _ repository.UserDirectory = (*UserDirectory)(nil)

// UserDirectory directorio estático de solo lectura.
type UserDirectory struct {
	entries []entity.DirectoryEntry
}

// NewUserDirectory construye el directorio con una copia de entries.
func NewUserDirectory(entries []entity.DirectoryEntry) *UserDirectory {
	cp := make([]entity.DirectoryEntry, len(entries))
	copy(cp, entries)
	return &UserDirectory{entries: cp}
}

// FindByEmail búsqueda lineal exacta por email.
func (d *UserDirectory) FindByEmail(_ context.Context, email string) (*entity.DirectoryEntry, error) {
	for _, e := range d.entries {
		if e.Email == email {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}
