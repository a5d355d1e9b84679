package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// NewSQLiteDB opens a private in-memory database with the catalog schema
// migrated. The connection is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &database.Config{
		Driver:   database.DriverSQLite,
		Path:     fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel: gormlogger.Silent,
	}
	db, cleanup, err := database.OpenDialector(sqlite.Open(cfg.Path), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}
	t.Cleanup(cleanup)

	if err := database.NewMigrator(db, logger.NewNoop(), repository.Migrations()...).Migrate(); err != nil {
		t.Fatalf("Failed to migrate sqlite database: %v", err)
	}
	return db
}

// NewStore returns a GormStore over a fresh sqlite database.
func NewStore(t testing.TB) *repository.GormStore {
	t.Helper()
	return repository.NewGormStore(NewSQLiteDB(t))
}
