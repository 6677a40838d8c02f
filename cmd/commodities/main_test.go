package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/domain/access"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

func TestParseProductFlags(t *testing.T) {
	f, err := parseProductFlags([]string{"-n", "Barley", "--price", "12.5", "-u", "ton"})
	require.NoError(t, err)

	require.NotNil(t, f.name)
	assert.Equal(t, "Barley", *f.name)
	require.NotNil(t, f.price)
	assert.Equal(t, "12.5", f.price.String())
	assert.Equal(t, "ton", *f.unit)
	assert.Nil(t, f.quantity, "los campos no indicados quedan nil")
	assert.Nil(t, f.category)
}

func TestParseProductFlags_Errores(t *testing.T) {
	_, err := parseProductFlags([]string{"--quantity", "mucho"})
	assert.Error(t, err)

	_, err = parseProductFlags([]string{"--name"})
	assert.Error(t, err)

	_, err = parseProductFlags([]string{"--color", "rojo"})
	assert.Error(t, err)
}

func TestRequireAction(t *testing.T) {
	keeper := &entity.User{Role: entity.RoleStoreKeeper}
	manager := &entity.User{Role: entity.RoleManager}

	assert.Error(t, requireAction(keeper, access.ViewDashboard))
	assert.NoError(t, requireAction(keeper, access.AddOrEditProducts))
	assert.NoError(t, requireAction(manager, access.ViewDashboard))
}

func TestDefaultSessionPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "commodities", "session.db"), defaultSessionPath())
}

func TestOutFlagYTruncate(t *testing.T) {
	assert.Equal(t, "x.pdf", outFlag([]string{"-o", "x.pdf"}, "def.pdf"))
	assert.Equal(t, "def.pdf", outFlag(nil, "def.pdf"))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "abc", truncate("abc", 7))
}
