package repository

import (
	"context"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// La validación de campos es responsabilidad del caso de uso, no del repositorio.
type ProductRepository interface {
	// List devuelve una copia de los productos en orden de almacenamiento (inserción).
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Create asigna ID y timestamps (CreatedAt == UpdatedAt) y agrega al final.
	Create(ctx context.Context, product entity.Product) (*entity.Product, error)
	// Update mezcla patch sobre el producto y refresca UpdatedAt. domain.ErrNotFound si no existe.
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
	// Delete elimina el producto. domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
