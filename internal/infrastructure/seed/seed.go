// Package seed carga los datos iniciales (usuarios y productos) desde YAML.
// Sin ruta se usa el fixture embebido en el binario.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

//go:embed seed.yaml
var embedded []byte

// Fixture datos iniciales ya validados.
type Fixture struct {
	Users    []entity.DirectoryEntry
	Products []entity.Product
}

type productRecord struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Quantity    float64   `yaml:"quantity"`
	Unit        string    `yaml:"unit"`
	Price       float64   `yaml:"price"`
	Description string    `yaml:"description"`
	Category    string    `yaml:"category"`
	CreatedAt   time.Time `yaml:"createdAt"`
	UpdatedAt   time.Time `yaml:"updatedAt"`
}

type document struct {
	Users    []entity.DirectoryEntry `yaml:"users"`
	Products []productRecord         `yaml:"products"`
}

// Load lee el fixture desde path; path vacío usa el embebido.
func Load(path string) (*Fixture, error) {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("seed: leer %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodifica y valida un documento YAML de seed.
func Parse(data []byte) (*Fixture, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("seed: yaml inválido: %w", err)
	}

	fx := &Fixture{}
	ids := make(map[string]bool, len(doc.Users))
	emails := make(map[string]bool, len(doc.Users))
	for i, u := range doc.Users {
		switch {
		case u.ID == "" || u.Email == "" || u.Password == "":
			return nil, fmt.Errorf("seed: usuario #%d: id, email y password son requeridos", i+1)
		case !u.Role.Valid():
			return nil, fmt.Errorf("seed: usuario %s: rol inválido %q", u.ID, u.Role)
		case ids[u.ID]:
			return nil, fmt.Errorf("seed: usuario duplicado %s", u.ID)
		case emails[u.Email]:
			return nil, fmt.Errorf("seed: email duplicado %s", u.Email)
		}
		ids[u.ID] = true
		emails[u.Email] = true
		fx.Users = append(fx.Users, u)
	}

	productIDs := make(map[string]bool, len(doc.Products))
	for i, r := range doc.Products {
		p, err := r.toEntity()
		if err != nil {
			return nil, fmt.Errorf("seed: producto #%d: %w", i+1, err)
		}
		if p.ID != "" {
			if productIDs[p.ID] {
				return nil, fmt.Errorf("seed: producto duplicado %s", p.ID)
			}
			productIDs[p.ID] = true
		}
		fx.Products = append(fx.Products, p)
	}
	return fx, nil
}

func (r productRecord) toEntity() (entity.Product, error) {
	unit := entity.Unit(r.Unit)
	if unit == "" {
		unit = entity.DefaultUnit
	}
	switch {
	case strings.TrimSpace(r.Name) == "":
		return entity.Product{}, fmt.Errorf("name es requerido")
	case strings.TrimSpace(r.Category) == "":
		return entity.Product{}, fmt.Errorf("category es requerido")
	case r.Quantity < 0 || r.Price < 0:
		return entity.Product{}, fmt.Errorf("quantity y price deben ser >= 0")
	case !unit.Valid():
		return entity.Product{}, fmt.Errorf("unidad inválida %q", r.Unit)
	}
	updated := r.UpdatedAt
	if updated.Before(r.CreatedAt) {
		updated = r.CreatedAt
	}
	return entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Quantity:    decimal.NewFromFloat(r.Quantity),
		Unit:        unit,
		Price:       decimal.NewFromFloat(r.Price),
		Description: r.Description,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updated,
	}, nil
}
