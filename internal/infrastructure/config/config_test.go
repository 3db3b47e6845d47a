package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := config.DefaultConfig()

	require.NoError(t, config.ValidateConfig(cfg))
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 5, cfg.Search.TopN)
	assert.Equal(t, 8, cfg.Search.MaxMixers)
	assert.Equal(t, "replacements", cfg.Search.Resolver)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  top_n: 3
  resolver: interactions
cache:
  enabled: false
  ttl: 1m
api:
  address: 127.0.0.1:9090
`), 0644))
	t.Setenv("S1_SEARCH_WORKERS", "7")
	t.Setenv("S1_LOGGING_LEVEL", "debug")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.TopN)
	assert.Equal(t, "interactions", cfg.Search.Resolver)
	assert.Equal(t, 7, cfg.Search.Workers)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "127.0.0.1:9090", cfg.API.Address)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"max mixers above eight", "search:\n  max_mixers: 9\n"},
		{"unknown resolver", "search:\n  resolver: magic\n"},
		{"unknown database", "database:\n  type: mysql\n"},
		{"file output without path", "logging:\n  output: file\n"},
		{"missing catalog file", "catalog:\n  path: /nonexistent/catalog.json\n"},
		{"idle pool above open pool", "database:\n  pool:\n    max_open: 2\n    max_idle: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			_, err := config.LoadConfig(path)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadConfig_ReportsConfigKeys(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  max_mixers: 9\n"), 0644))

	// Act
	_, err := config.LoadConfig(path)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.max_mixers failed validation: max")
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  resolver: magic\n"), 0644))

	cfg := config.LoadConfigOrDefault(path)

	assert.Equal(t, "replacements", cfg.Search.Resolver)
}

func TestUserConfigHandler(t *testing.T) {
	// Arrange
	handler := config.NewUserConfigHandlerAt(filepath.Join(t.TempDir(), "nested", "preferences.json"))

	// Act
	empty, err := handler.Load()
	require.NoError(t, err)
	require.NoError(t, handler.SetDefaultProduct("OG Kush"))
	require.NoError(t, handler.SetUnlockedMixers([]string{"Cuke", "Banana", "Cuke"}))
	loaded, err := handler.Load()
	require.NoError(t, err)
	require.NoError(t, handler.Clear())
	cleared, err := handler.Load()
	require.NoError(t, err)

	// Assert
	assert.Empty(t, empty.DefaultProduct)
	assert.Equal(t, "OG Kush", loaded.DefaultProduct)
	assert.Equal(t, []string{"Cuke", "Banana"}, loaded.UnlockedMixers)
	assert.Empty(t, cleared.DefaultProduct)
	assert.FileExists(t, handler.Path())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{"sqlite file", config.DatabaseConfig{Type: "sqlite", Path: "schedule1.db"}, "schedule1.db"},
		{"sqlite without path", config.DatabaseConfig{Type: "sqlite"}, ":memory:"},
		{"postgres url wins", config.DatabaseConfig{Type: "postgres", URL: "postgresql://u@db/s1", Host: "ignored"}, "postgresql://u@db/s1"},
		{
			"postgres fields",
			config.DatabaseConfig{Type: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", Name: "s1", SSLMode: "disable"},
			"host=db port=5432 user=u password=p dbname=s1 sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestValidateConfig_PostgresNeedsTarget(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database = config.DatabaseConfig{
		Type: "postgres",
		Pool: config.PoolConfig{MaxOpen: 4, MaxIdle: 2},
	}

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host failed validation")
}
