package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 2000, cfg.Rental.MinYear)
	assert.Equal(t, 2025, cfg.Rental.MaxYear)
	assert.Equal(t, "USD", cfg.Rental.Currency)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "postgres"

[database]
host = "db.internal"
port = 5433
user = "rental"
password = "secret"
dbname = "av_rental"
sslmode = "require"

[rental]
min_year = 2010
max_year = 2024

[seed]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t,
		"host=db.internal port=5433 user=rental password=secret dbname=av_rental sslmode=require",
		cfg.Database.DSN())
	assert.Equal(t, 2010, cfg.Rental.MinYear)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "redis"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidYearRange(t *testing.T) {
	path := writeConfig(t, `
[rental]
min_year = 2030
max_year = 2020
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
