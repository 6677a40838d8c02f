package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

func TestSessionRegistry_Put_BarreExpirados(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	reg := NewSessionRegistry(func() time.Time { return clock })
	user := entity.User{ID: "1", Email: "admin@commodities.com", Role: entity.RoleManager, Name: "Admin"}

	for _, tok := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Put(ctx, tok, user, time.Minute))
	}
	require.NoError(t, reg.Put(ctx, "larga", user, time.Hour))
	assert.Len(t, reg.sessions, 4)

	// nadie vuelve a presentar a, b ni c
	clock = clock.Add(2 * time.Minute)
	require.NoError(t, reg.Put(ctx, "d", user, time.Minute))

	assert.Len(t, reg.sessions, 2)
	assert.Contains(t, reg.sessions, "larga")
	assert.Contains(t, reg.sessions, "d")
}
