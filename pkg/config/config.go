package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the interface that all service configs must implement.
type Config interface {
	Validate() error
}

// BaseConfig contains common configuration for all services.
type BaseConfig struct {
	Service    ServiceConfig    `koanf:"service"`
	Database   DatabaseConfig   `koanf:"database"`
	Logger     LoggerConfig     `koanf:"logger"`
	Auth       AuthConfig       `koanf:"auth"`
	Pagination PaginationConfig `koanf:"pagination"`
}

// ServiceConfig contains service-specific metadata.
type ServiceConfig struct {
	Name            string        `koanf:"name"`
	Version         string        `koanf:"version"`
	Environment     string        `koanf:"environment"` // dev, staging, production
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// AuthConfig contains the identity and role settings.
type AuthConfig struct {
	JWTSecret           string        `koanf:"jwt_secret"`
	Issuer              string        `koanf:"issuer"`
	AccessTokenDuration time.Duration `koanf:"access_token_duration"`
	RBACType            string        `koanf:"rbac_type"` // "builtin" or "casbin"
	RBACModelPath       string        `koanf:"rbac_model_path"`
	RBACPolicyPath      string        `koanf:"rbac_policy_path"`
}

// PaginationConfig documents the page size bounds enforced on list operations.
type PaginationConfig struct {
	MaxPageSize     int `koanf:"max_page_size"`
	DefaultPageSize int `koanf:"default_page_size"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"` // postgres or sqlite
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Database        string        `koanf:"database"`
	SSLMode         string        `koanf:"ssl_mode"`
	Path            string        `koanf:"path"` // sqlite file, or :memory:
	MaxConnections  int           `koanf:"max_connections"`
	MinConnections  int           `koanf:"min_connections"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"`
}

// LoggerConfig contains logging configuration.
type LoggerConfig struct {
	Level       string `koanf:"level"`  // debug, info, warn, error
	Format      string `koanf:"format"` // json, console
	Development bool   `koanf:"development"`
	OutputPath  string `koanf:"output_path"` // stdout, stderr, or file path
}

// Manager handles configuration loading and parsing.
type Manager struct {
	k           *koanf.Koanf
	serviceName string
	configPaths []string
}

// NewManager creates a new configuration manager.
func NewManager(serviceName string) *Manager {
	return &Manager{
		k:           koanf.New("."),
		serviceName: serviceName,
		configPaths: getDefaultConfigPaths(serviceName),
	}
}

// WithConfigPaths replaces the file lookup list, mainly for tests and --config flags.
func (m *Manager) WithConfigPaths(paths ...string) *Manager {
	m.configPaths = paths
	return m
}

// LoadConfig loads configuration from all sources.
func (m *Manager) LoadConfig(cfg Config) error {
	// 1. Load defaults from struct tags
	if err := m.loadDefaults(cfg); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load from config files (in order of precedence)
	for _, path := range m.configPaths {
		if err := m.loadFromFile(path); err != nil {
			// Skip if file doesn't exist, error on parse failures
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	// 3. Load from environment variables
	if err := m.loadFromEnv(); err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}

	// 4. Unmarshal into the config struct
	if err := m.k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// loadDefaults loads default values from struct.
func (m *Manager) loadDefaults(cfg Config) error {
	return m.k.Load(structs.Provider(cfg, "koanf"), nil)
}

// loadFromFile loads configuration from a file.
func (m *Manager) loadFromFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	return m.k.Load(file.Provider(path), parser)
}

// loadFromEnv loads configuration from environment variables.
func (m *Manager) loadFromEnv() error {
	prefix := strings.ToUpper(m.serviceName) + "_"

	// CATALOG_DATABASE__MAX_CONNECTIONS -> database.max_connections
	return m.k.Load(env.Provider(prefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, prefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
}

// getDefaultConfigPaths returns the default config paths to check.
func getDefaultConfigPaths(serviceName string) []string {
	paths := []string{
		"config.yaml",
		"config.json",
		fmt.Sprintf("%s.yaml", serviceName),
		fmt.Sprintf("%s.json", serviceName),
		"configs/config.yaml",
		"configs/config.json",
		fmt.Sprintf("configs/%s.yaml", serviceName),
		fmt.Sprintf("configs/%s.json", serviceName),
		fmt.Sprintf("configs/%s.%s.yaml", serviceName, getEnvironment()),
		fmt.Sprintf("configs/%s.%s.json", serviceName, getEnvironment()),
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		paths = append([]string{configPath}, paths...)
	}

	return paths
}

func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "dev"
}

// Validate validates the base configuration.
func (c *BaseConfig) Validate() error {
	if c.Service.Name == "" {
		return errors.New("service name is required")
	}
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid service port: %d", c.Service.Port)
	}
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return errors.New("database host is required")
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT secret is required (set via CATALOG_AUTH__JWT_SECRET env var or config)")
	}
	if c.Auth.AccessTokenDuration < time.Minute {
		return errors.New("access token duration must be at least 1 minute")
	}
	if c.Pagination.DefaultPageSize < 1 || c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("invalid page size bounds: default %d, max %d",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}
	return nil
}

// GetDefaults returns default configuration values.
func GetDefaults() *BaseConfig {
	return &BaseConfig{
		Service: ServiceConfig{
			Environment:     "dev",
			Port:            DefaultHTTPPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            DefaultPostgresPort,
			User:            "catalog",
			Password:        "catalog_dev",
			Database:        "catalog_dev",
			SSLMode:         "disable",
			MaxConnections:  DefaultMaxConnections,
			MinConnections:  DefaultMinConnections,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: DefaultMaxConnIdleTime,
			SlowThreshold:   DefaultSlowThreshold,
		},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "json",
			Development: false,
			OutputPath:  "stdout",
		},
		Auth: AuthConfig{
			JWTSecret:           "", // Must be set via env or config
			Issuer:              "narwhal-catalog",
			AccessTokenDuration: DefaultAccessTokenDuration,
			RBACType:            "builtin",
		},
		Pagination: PaginationConfig{
			MaxPageSize:     DefaultMaxPageSize,
			DefaultPageSize: DefaultPageSize,
		},
	}
}
