package database

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Migration records an applied migration.
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Version   string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName keeps the bookkeeping table out of the domain namespace.
func (Migration) TableName() string {
	return "schema_migrations"
}

// MigrationFunc is a function that performs a migration
type MigrationFunc func(*gorm.DB) error

// MigrationEntry represents a single migration
type MigrationEntry struct {
	Version string
	Name    string
	Up      MigrationFunc
}

// Migrator applies migrations in version order, each in its own transaction.
type Migrator struct {
	db         *gorm.DB
	logger     interfaces.Logger
	migrations []MigrationEntry
}

// NewMigrator creates a new migrator instance
func NewMigrator(db *gorm.DB, logger interfaces.Logger, migrations ...MigrationEntry) *Migrator {
	sorted := append([]MigrationEntry(nil), migrations...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })

	return &Migrator{
		db:         db,
		logger:     logger,
		migrations: sorted,
	}
}

// Migrate runs all pending migrations
func (m *Migrator) Migrate() error {
	if err := m.db.AutoMigrate(&Migration{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.applied()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if applied[migration.Version] {
			continue
		}

		m.logger.Info("Running migration",
			interfaces.String("version", migration.Version),
			interfaces.String("name", migration.Name))

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&Migration{
				Version:   migration.Version,
				Name:      migration.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.Version, err)
		}
	}

	return nil
}

// GetPendingMigrations returns a list of pending migrations
func (m *Migrator) GetPendingMigrations() ([]MigrationEntry, error) {
	if err := m.db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.applied()
	if err != nil {
		return nil, err
	}

	var pending []MigrationEntry
	for _, migration := range m.migrations {
		if !applied[migration.Version] {
			pending = append(pending, migration)
		}
	}
	return pending, nil
}

func (m *Migrator) applied() (map[string]bool, error) {
	var rows []Migration
	if err := m.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	applied := make(map[string]bool, len(rows))
	for _, row := range rows {
		applied[row.Version] = true
	}
	return applied, nil
}
