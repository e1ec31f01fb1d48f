package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/portal/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: memory\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.False(t, cfg.Debug)
}

func TestLoad_PostgresRequiresDatabase(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: postgres\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_PostgresComplete(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: postgres
database:
  host: db.internal
  dbname: portal
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: sqlite\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORTAL_PORT", "9090")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("POSTGRES_HOST", "envhost")
	t.Setenv("POSTGRES_DB", "envdb")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	path := writeConfig(t, "storage:\n  driver: memory\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.True(t, cfg.Debug)
	assert.Equal(t, config.DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "envhost", cfg.Database.Host)
	assert.Equal(t, "envdb", cfg.Database.DBName)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", config.GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/etc/portal/config.yml")
	assert.Equal(t, "/etc/portal/config.yml", config.GetConfigPath("config.yml"))
}
