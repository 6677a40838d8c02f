package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/application/session"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/infrastructure/sqlite"
)

func TestKeyValueStorage_CRUD(t *testing.T) {
	ctx := context.Background()
	kv, err := sqlite.Open(filepath.Join(t.TempDir(), "nested", "session.db"))
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.SetMany(ctx, map[string]string{"k": "v1", "j": "w"}))
	require.NoError(t, kv.SetMany(ctx, map[string]string{"k": "v2"}))
	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
	v, _, _ = kv.Get(ctx, "j")
	assert.Equal(t, "w", v)

	require.NoError(t, kv.Delete(ctx, "k", "j"))
	require.NoError(t, kv.Delete(ctx, "k"))
	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyValueStorage_SetMany_ContextoCancelado_NoEscribeNada(t *testing.T) {
	kv, err := sqlite.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer kv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, kv.SetMany(ctx, map[string]string{"k": "v", "j": "w"}))

	for _, key := range []string{"k", "j"} {
		_, ok, err := kv.Get(context.Background(), key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestKeyValueStorage_SesionSobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")
	user := entity.User{ID: "2", Email: "keeper@commodities.com", Role: entity.RoleStoreKeeper, Name: "Store Keeper"}

	kv, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, session.NewStore(kv).Save(ctx, "tok", user))
	require.NoError(t, kv.Close())

	kv, err = sqlite.Open(path)
	require.NoError(t, err)
	defer kv.Close()

	got, ok := session.NewStore(kv).Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, user, got.User)
}
