package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/infrastructure/memory"
)

// fakeClock avanza un segundo en cada lectura.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func wheat() entity.Product {
	return entity.Product{
		Name:        "Wheat",
		Quantity:    decimal.NewFromInt(1200),
		Unit:        entity.UnitKilogram,
		Price:       decimal.NewFromInt(25),
		Description: "Hard red winter",
		Category:    "Grains",
	}
}

func TestCreate_LuegoList_UnRegistroNuevo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(nil, memory.WithClock(newClock().Now))

	created, err := repo.Create(ctx, wheat())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt, "createdAt == updatedAt en la inserción")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Wheat", got.Name)
	assert.Equal(t, "Grains", got.Category)
	assert.Equal(t, entity.UnitKilogram, got.Unit)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(25)))
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(1200)))
}

func TestCreate_IgnoraIDYTimestampsDelLlamador(t *testing.T) {
	repo := memory.NewProductRepository(nil, memory.WithIDGenerator(func() string { return "gen-1" }))
	in := wheat()
	in.ID = "cliente"
	in.CreatedAt = time.Unix(0, 0)

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "gen-1", created.ID)
	assert.NotEqual(t, time.Unix(0, 0), created.CreatedAt)
}

func TestCreate_ConservaOrdenDeInsercion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(nil)
	for i := 0; i < 5; i++ {
		p := wheat()
		p.Name = fmt.Sprintf("p%d", i)
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}
	list, err := repo.List(ctx)
	require.NoError(t, err)
	for i, p := range list {
		assert.Equal(t, fmt.Sprintf("p%d", i), p.Name)
	}
}

func TestUpdate_SoloPrecioYUpdatedAtCambian(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(nil, memory.WithClock(newClock().Now))
	created, err := repo.Create(ctx, wheat())
	require.NoError(t, err)

	price := decimal.NewFromInt(31)
	updated, err := repo.Update(ctx, created.ID, entity.ProductPatch{Price: &price})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]

	assert.Equal(t, *updated, got)
	assert.True(t, got.Price.Equal(price))
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt), "updatedAt debe crecer")

	// Todo lo demás intacto.
	want := *created
	want.Price = got.Price
	want.UpdatedAt = got.UpdatedAt
	assert.Equal(t, want, got)
}

func TestUpdate_IDDesconocido_NotFoundSinCambios(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository([]entity.Product{wheat()})
	before, err := repo.List(ctx)
	require.NoError(t, err)

	name := "X"
	_, err = repo.Update(ctx, "no-existe", entity.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdate_RelojAtrasado_NoRetrocedeBajoCreatedAt(t *testing.T) {
	ctx := context.Background()
	times := []time.Time{
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	i := 0
	repo := memory.NewProductRepository(nil, memory.WithClock(func() time.Time {
		ts := times[i]
		i++
		return ts
	}))
	created, err := repo.Create(ctx, wheat())
	require.NoError(t, err)

	desc := "nueva"
	updated, err := repo.Update(ctx, created.ID, entity.ProductPatch{Description: &desc})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestList_DevuelveCopia(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository([]entity.Product{wheat()})
	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "mutado"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Wheat", again[0].Name)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	seed := wheat()
	seed.ID = "seed-1"
	repo := memory.NewProductRepository([]entity.Product{seed})

	got, err := repo.GetByID(ctx, "seed-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Wheat", got.Name)

	missing, err := repo.GetByID(ctx, "otro")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNewProductRepository_SeedDuplicadoSeIgnora(t *testing.T) {
	a := wheat()
	a.ID = "dup"
	b := wheat()
	b.ID = "dup"
	b.Name = "Otro"
	repo := memory.NewProductRepository([]entity.Product{a, b})

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Wheat", list[0].Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	var seed []entity.Product
	for _, id := range []string{"a", "b", "c"} {
		p := wheat()
		p.ID = id
		seed = append(seed, p)
	}
	repo := memory.NewProductRepository(seed)

	require.NoError(t, repo.Delete(ctx, "b"))
	assert.ErrorIs(t, repo.Delete(ctx, "b"), domain.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)

	// El índice sigue siendo correcto después de compactar.
	name := "C"
	updated, err := repo.Update(ctx, "c", entity.ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "C", updated.Name)
}

func TestCreate_Concurrente_IDsUnicos(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(nil)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, wheat())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, n)
	seen := make(map[string]bool, n)
	for _, p := range list {
		assert.False(t, seen[p.ID], "id duplicado %s", p.ID)
		seen[p.ID] = true
	}
}
