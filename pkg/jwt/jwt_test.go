package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/commodities-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testSubject = pkgjwt.Subject{
	UserID: "1",
	Email:  "admin@commodities.com",
	Name:   "Admin",
	Role:   "manager",
}

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "commodities-test", testSubject, time.Now(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject, *got)
}

func TestJWT_DosTokensMismoInstante_SonDistintos(t *testing.T) {
	now := time.Now()
	a, err := pkgjwt.Generate(testSecret, "", testSubject, now, time.Hour)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, "", testSubject, now, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "", testSubject, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "", testSubject, time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", "", testSubject, time.Now(), time.Hour)
	assert.Error(t, err)
}
