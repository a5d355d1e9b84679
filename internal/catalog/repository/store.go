// Package repository persists the catalog with GORM.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

// GormStore implements Store over a *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB returns the underlying handle.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Developers() CatalogRepository[domain.Developer] {
	return newCatalogRepository[domain.Developer](s.db, catalogTable{
		name:          "developers",
		notFound:      domain.ErrDeveloperNotFound,
		alreadyExists: domain.ErrDeveloperAlreadyExists,
		referencedBy:  "SELECT 1 FROM games WHERE developer_id = ?",
	})
}

func (s *GormStore) Genres() CatalogRepository[domain.Genre] {
	return newCatalogRepository[domain.Genre](s.db, catalogTable{
		name:          "genres",
		notFound:      domain.ErrGenreNotFound,
		alreadyExists: domain.ErrGenreAlreadyExists,
		referencedBy:  "SELECT 1 FROM game_genres WHERE genre_id = ?",
	})
}

func (s *GormStore) Platforms() CatalogRepository[domain.Platform] {
	return newCatalogRepository[domain.Platform](s.db, catalogTable{
		name:          "platforms",
		notFound:      domain.ErrPlatformNotFound,
		alreadyExists: domain.ErrPlatformAlreadyExists,
		referencedBy:  "SELECT 1 FROM game_platforms WHERE platform_id = ?",
	})
}

func (s *GormStore) Crew() CrewRepository          { return &crewRepository{db: s.db} }
func (s *GormStore) Games() GameRepository         { return &gameRepository{db: s.db} }
func (s *GormStore) Movies() MovieRepository       { return &movieRepository{db: s.db} }
func (s *GormStore) Users() UserRepository         { return &userRepository{db: s.db} }
func (s *GormStore) Likes() LikeRepository         { return &likeRepository{db: s.db} }
func (s *GormStore) Reviews() ReviewRepository     { return &reviewRepository{db: s.db} }
func (s *GormStore) MediaKeys() MediaKeyRepository { return &mediaKeyRepository{db: s.db} }

// Transaction runs fn with a store bound to a single transaction. The
// transaction commits when fn returns nil.
func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// applySpec adds the specification as a WHERE clause.
func applySpec(db *gorm.DB, spec specification.Specification) *gorm.DB {
	if specification.IsAll(spec) {
		return db
	}
	sql, params := spec.ToSQL()
	return db.Where(sql, params...)
}

// withCounts selects the live like and review counts of a media table.
func withCounts(table string) pkgrepo.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(table + ".*, " +
			"(SELECT COUNT(*) FROM likes WHERE likes.media_id = " + table + ".id) AS like_count, " +
			"(SELECT COUNT(*) FROM reviews WHERE reviews.media_id = " + table + ".id) AS review_count")
	}
}

// translate maps the generic helper errors to entity errors.
func translate(err, notFound, alreadyExists error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pkgrepo.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		if notFound != nil {
			return notFound
		}
	case errors.Is(err, pkgrepo.ErrDuplicate), pkgerrors.IsDuplicateError(err):
		if alreadyExists != nil {
			return alreadyExists
		}
	}
	return err
}

// notFoundAsNil turns a not-found lookup into (nil, nil).
func notFoundAsNil[T any](entity *T, err error) (*T, error) {
	if errors.Is(err, pkgrepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
