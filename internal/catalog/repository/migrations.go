package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/database"
)

// Models lists every table of the catalog schema.
func Models() []interface{} {
	return []interface{}{
		&domain.MediaKey{},
		&domain.Developer{},
		&domain.Genre{},
		&domain.Platform{},
		&domain.MovieCrew{},
		&domain.User{},
		&domain.Game{},
		&domain.Movie{},
		&domain.MovieCrewRole{},
		&domain.Like{},
		&domain.Review{},
	}
}

// Migrations returns the catalog schema migrations in order.
func Migrations() []database.MigrationEntry {
	return []database.MigrationEntry{
		{
			Version: "20240601_001",
			Name:    "Create catalog schema",
			Up:      migration001CreateSchema,
		},
		{
			Version: "20240601_002",
			Name:    "Add case-insensitive and pair unique indexes",
			Up:      migration002UniqueIndexes,
		},
	}
}

func migration001CreateSchema(tx *gorm.DB) error {
	if err := tx.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to create catalog tables: %w", err)
	}
	return nil
}

// Unique indexes work on postgres and sqlite alike. They back the in-process
// uniqueness checks against concurrent writers.
var uniqueIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_developers_name ON developers (LOWER(name))",
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_genres_name ON genres (LOWER(name))",
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_platforms_name ON platforms (LOWER(name))",
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_movie_crew_name_birth ON movie_crew (LOWER(full_name), birth_date)",
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_users_active_user_name ON users (LOWER(user_name)) WHERE active",
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_likes_user_media ON likes (user_id, media_id)",
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_reviews_user_media ON reviews (user_id, media_id)",
}

func migration002UniqueIndexes(tx *gorm.DB) error {
	for _, stmt := range uniqueIndexes {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
