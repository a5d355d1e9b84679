package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/pkg/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadServiceConfig_FileAndEnv(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
service:
  port: 9090
database:
  driver: sqlite
  path: ":memory:"
auth:
  jwt_secret: from-file
catalog:
  events:
    driver: nats
    nats:
      url: nats://nats:4222
`)
	t.Setenv("CATALOG_AUTH__JWT_SECRET", "from-env")
	t.Setenv("CATALOG_PAGINATION__DEFAULT_PAGE_SIZE", "10")

	cfg := config.GetDefaultCatalogConfig()
	require.NoError(t, config.LoadServiceConfig("catalog", cfg, path))

	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, "catalog", cfg.Service.Name)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, config.DefaultMaxPageSize, cfg.Pagination.MaxPageSize)
	assert.Equal(t, "nats://nats:4222", cfg.Catalog.Events.NATS.URL)
	assert.Equal(t, "CATALOG", cfg.Catalog.Events.NATS.StreamName)
	assert.Equal(t, config.DefaultAccessTokenDuration, cfg.Auth.AccessTokenDuration)
}

func TestLoadServiceConfig_MissingSecret(t *testing.T) {
	cfg := config.GetDefaultCatalogConfig()
	err := config.LoadServiceConfig("catalog", cfg, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestLoadServiceConfig_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "catalog.toml", "port = 1")
	cfg := config.GetDefaultCatalogConfig()
	err := config.LoadServiceConfig("catalog", cfg, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestCatalogConfig_Validate(t *testing.T) {
	valid := func() *config.CatalogConfig {
		cfg := config.GetDefaultCatalogConfig()
		cfg.Auth.JWTSecret = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*config.CatalogConfig)
		wantErr string
	}{
		{"defaults", func(*config.CatalogConfig) {}, ""},
		{"bad port", func(c *config.CatalogConfig) { c.Service.Port = 0 }, "invalid service port"},
		{"unknown driver", func(c *config.CatalogConfig) { c.Database.Driver = "mysql" }, "unsupported database driver"},
		{"sqlite without path", func(c *config.CatalogConfig) { c.Database.Driver = config.DriverSQLite }, "sqlite path is required"},
		{"short token", func(c *config.CatalogConfig) { c.Auth.AccessTokenDuration = time.Second }, "at least 1 minute"},
		{"page bounds", func(c *config.CatalogConfig) { c.Pagination.MaxPageSize = 5 }, "invalid page size bounds"},
		{"kafka without topic", func(c *config.CatalogConfig) {
			c.Catalog.Events.Driver = config.EventsDriverKafka
			c.Catalog.Events.Kafka.Topic = ""
		}, "kafka topic is required"},
		{"unknown events driver", func(c *config.CatalogConfig) { c.Catalog.Events.Driver = "sqs" }, "unsupported events driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_ToDatabaseConfig(t *testing.T) {
	cfg := config.GetDefaults().Database
	cfg.SSLMode = ""

	dbCfg := cfg.ToDatabaseConfig(false)
	assert.Equal(t, "disable", dbCfg.SSLMode)
	assert.Equal(t, config.DriverPostgres, dbCfg.Driver)
	assert.Equal(t, config.DefaultMaxConnections, dbCfg.MaxConnections)
}

func TestIsProduction(t *testing.T) {
	for env, want := range map[string]bool{"production": true, "prod": true, "dev": false, "": false} {
		assert.Equal(t, want, config.IsProduction(&config.ServiceConfig{Environment: env}), env)
	}
}
