package config

import (
	"fmt"
	"os"

	"gorm.io/gorm/logger"

	"github.com/narwhalmedia/catalog/pkg/database"
)

// LoadServiceConfig is a generic helper to load service configuration
func LoadServiceConfig[T Config](serviceName string, cfg T, paths ...string) error {
	manager := NewManager(serviceName)
	if len(paths) > 0 {
		manager = manager.WithConfigPaths(paths...)
	}
	return manager.LoadConfig(cfg)
}

// ToDatabaseConfig converts config to database package config
func (c DatabaseConfig) ToDatabaseConfig(debug bool) *database.Config {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}

	return &database.Config{
		Driver:          c.Driver,
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Database:        c.Database,
		SSLMode:         c.SSLMode,
		Path:            c.Path,
		MaxConnections:  c.MaxConnections,
		MinConnections:  c.MinConnections,
		MaxConnLifetime: c.MaxConnLifetime,
		MaxConnIdleTime: c.MaxConnIdleTime,
		SlowThreshold:   c.SlowThreshold,
		LogLevel:        logLevel,
	}
}

// GetServiceVersion returns the service version from config or environment
func GetServiceVersion(cfg *ServiceConfig) string {
	if cfg.Version != "" {
		return cfg.Version
	}
	if version := os.Getenv("SERVICE_VERSION"); version != "" {
		return version
	}
	return "dev"
}

// IsProduction returns true if running in production environment
func IsProduction(cfg *ServiceConfig) bool {
	return cfg.Environment == "production" || cfg.Environment == "prod"
}

// GetListenAddress returns the formatted listen address for HTTP server
func GetListenAddress(cfg *ServiceConfig) string {
	return fmt.Sprintf(":%d", cfg.Port)
}
