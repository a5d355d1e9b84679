// Package database opens GORM connections and runs versioned migrations.
package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database connection configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	Path            string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	SlowThreshold   time.Duration
	LogLevel        logger.LogLevel
}

// DefaultConfig returns a default PostgreSQL configuration
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Host:            "localhost",
		Port:            5432,
		User:            "catalog",
		Password:        "catalog_dev",
		Database:        "catalog_dev",
		SSLMode:         "disable",
		MaxConnections:  25,
		MinConnections:  5,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        logger.Warn,
	}
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// Dialector returns the GORM dialector for the configured driver.
func (c *Config) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres, "":
		return postgres.Open(c.DSN()), nil
	case DriverSQLite:
		path := c.Path
		if path == "" || path == ":memory:" {
			path = "file::memory:?cache=shared"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", c.Driver)
	}
}

// GormConfig is the gorm.Config every connection uses. Driver errors are
// translated so unique violations surface as gorm.ErrDuplicatedKey.
func GormConfig(log logger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger: log,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}
}

// Open creates a new GORM connection and returns a cleanup func that closes it.
func Open(cfg *Config, zl *zap.Logger) (*gorm.DB, func(), error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, nil, err
	}

	return OpenDialector(dialector, cfg, zl)
}

// OpenDialector opens a connection over an existing dialector. Tests use it
// with sqlmock.
func OpenDialector(dialector gorm.Dialector, cfg *Config, zl *zap.Logger) (*gorm.DB, func(), error) {
	gormCfg := GormConfig(NewGormLogger(zl, cfg.LogLevel, cfg.SlowThreshold))
	if cfg.Driver != DriverSQLite {
		gormCfg.PrepareStmt = true
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows one writer; a single connection also keeps
		// in-memory databases alive and shared.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MinConnections)
		sqlDB.SetConnMaxLifetime(cfg.MaxConnLifetime)
		sqlDB.SetConnMaxIdleTime(cfg.MaxConnIdleTime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return db, cleanup, nil
}
