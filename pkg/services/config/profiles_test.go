package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_GetProfile(t *testing.T) {
	path := writeProfiles(t, `
[local]
platform = duckdb
config = ./sales.db

[prod]
platform = snowflake
config = /etc/sales-insights/snowflake.yaml
`)

	reg, err := NewRegistry(path)
	require.NoError(t, err)

	p, err := reg.GetProfile(context.Background(), "prod")
	require.NoError(t, err)
	assert.Equal(t, "snowflake", p.Platform)
	assert.Equal(t, "/etc/sales-insights/snowflake.yaml", p.ConfigPath)

	_, err = reg.GetProfile(context.Background(), "staging")
	assert.Error(t, err)
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeProfiles(t, `
[local]
platform = duckdb
config = ./sales.db
`)

	reg, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := reg.GetProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "local", profiles[0].Name)
}
