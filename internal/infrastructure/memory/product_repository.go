// Package memory implementa los puertos de repositorio en memoria del proceso.
// El estado vive mientras vive el proceso; cada reinicio vuelve al seed.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo secuencia ordenada de productos protegida por un RWMutex:
// un escritor a la vez, lecturas sobre copias.
type ProductRepo struct {
	mu       sync.RWMutex
	products []entity.Product
	index    map[string]int // id → posición en products
	now      func() time.Time
	newID    func() string
}

// Option configura el repositorio.
type Option func(*ProductRepo)

// WithClock inyecta el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(r *ProductRepo) { r.now = now }
}

// WithIDGenerator inyecta el generador de IDs (tests).
func WithIDGenerator(newID func() string) Option {
	return func(r *ProductRepo) { r.newID = newID }
}

// NewProductRepository construye el repositorio con los productos iniciales en su orden.
// Los productos del seed conservan su ID y timestamps; si faltan se generan.
func NewProductRepository(seed []entity.Product, opts ...Option) *ProductRepo {
	r := &ProductRepo{
		index: make(map[string]int, len(seed)),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = r.newID()
		}
		if _, dup := r.index[p.ID]; dup {
			continue
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = r.now()
		}
		if p.UpdatedAt.Before(p.CreatedAt) {
			p.UpdatedAt = p.CreatedAt
		}
		r.index[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r
}

// List devuelve una copia en orden de almacenamiento.
func (r *ProductRepo) List(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	p := r.products[i]
	return &p, nil
}

// Create asigna un ID nuevo y timestamps iguales, y agrega al final de la secuencia.
func (r *ProductRepo) Create(_ context.Context, product entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	if _, dup := r.index[id]; dup {
		return nil, domain.ErrDuplicate
	}
	now := r.now()
	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now

	r.index[id] = len(r.products)
	r.products = append(r.products, product)
	return &product, nil
}

// Update mezcla patch y reemplaza el registro en su lugar.
func (r *ProductRepo) Update(_ context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.products[i]
	patch.Apply(&p)
	p.ID = id
	p.UpdatedAt = r.now()
	if p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = p.CreatedAt
	}
	r.products[i] = p
	return &p, nil
}

// Delete elimina el producto conservando el orden del resto.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.products); j++ {
		r.index[r.products[j].ID] = j
	}
	return nil
}
