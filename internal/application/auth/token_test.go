package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/application/auth"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

func TestOpaqueTokenEncoder_DistintoPorInstante(t *testing.T) {
	u := entity.User{ID: "7"}
	now := time.Now()

	a, err := auth.OpaqueTokenEncoder{}.Encode(u, now)
	require.NoError(t, err)
	b, err := auth.OpaqueTokenEncoder{}.Encode(u, now.Add(time.Nanosecond))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestJWTTokenEncoder_EncodeVerify(t *testing.T) {
	enc := auth.JWTTokenEncoder{Secret: "s3cret", Issuer: "commodities-test", TTL: time.Hour}
	u := entity.User{ID: "1", Email: "admin@commodities.com", Role: entity.RoleManager, Name: "Admin"}

	tok, err := enc.Encode(u, time.Now())
	require.NoError(t, err)

	got, err := enc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, u, *got)

	_, err = enc.Verify(tok + "x")
	assert.Error(t, err)
}
