package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/infrastructure/seed"
)

func TestLoad_Embebido(t *testing.T) {
	fx, err := seed.Load("")
	require.NoError(t, err)

	require.NotEmpty(t, fx.Users)
	admin := fx.Users[0]
	assert.Equal(t, "1", admin.ID)
	assert.Equal(t, "admin@commodities.com", admin.Email)
	assert.Equal(t, "password123", admin.Password)
	assert.Equal(t, entity.RoleManager, admin.Role)
	assert.Equal(t, "Admin", admin.Name)

	require.NotEmpty(t, fx.Products)
	for _, p := range fx.Products {
		assert.True(t, p.Unit.Valid(), p.Name)
		assert.False(t, p.UpdatedAt.Before(p.CreatedAt), p.Name)
	}
	assert.True(t, fx.Products[5].Price.Equal(decimal.RequireFromString("42.5")))
}

func TestLoad_Archivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := `
users:
  - {id: "9", email: a@b.c, password: x, role: storekeeper, name: K}
products:
  - {name: Salt, quantity: 10, price: 2, category: Minerals}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	fx, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, fx.Users, 1)
	require.Len(t, fx.Products, 1)
	assert.Equal(t, entity.DefaultUnit, fx.Products[0].Unit, "unidad vacía toma el default")
}

func TestParse_Errores(t *testing.T) {
	cases := map[string]string{
		"rol inválido":     `users: [{id: "1", email: a, password: p, role: admin}]`,
		"email duplicado":  `users: [{id: "1", email: a, password: p, role: manager}, {id: "2", email: a, password: p, role: manager}]`,
		"sin password":     `users: [{id: "1", email: a, role: manager}]`,
		"precio negativo":  `products: [{name: X, category: Y, price: -1}]`,
		"unidad inválida":  `products: [{name: X, category: Y, unit: lb}]`,
		"sin categoría":    `products: [{name: X}]`,
		"id duplicado":     `products: [{id: "1", name: X, category: Y}, {id: "1", name: Z, category: Y}]`,
		"yaml malformado":  `users: [`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := seed.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
