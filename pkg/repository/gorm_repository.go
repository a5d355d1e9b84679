// Package repository holds generic GORM helpers shared by the entity repositories.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = pkgerrors.NotFound("entity not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = pkgerrors.Conflict("entity already exists")
)

// Create creates a new entity in the database.
func Create[T any](ctx context.Context, db *gorm.DB, entity *T, omit ...string) error {
	query := db.WithContext(ctx)
	if len(omit) > 0 {
		query = query.Omit(omit...)
	}
	if err := query.Create(entity).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// FindByID finds an entity by its ID. It preloads specified associations.
func FindByID[T any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*T, error) {
	var entity T
	query := db.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	if err := query.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindOneBy finds a single entity by a query condition.
func FindOneBy[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Exists reports whether any row matches the condition.
func Exists[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (bool, error) {
	var entity T
	var count int64
	if err := db.WithContext(ctx).Model(&entity).Where(query, args...).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves all fields of an entity. Associations are not touched.
func Update[T any](ctx context.Context, db *gorm.DB, entity *T) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes an entity from the database by its ID.
func Delete[T any](ctx context.Context, db *gorm.DB, id uint) error {
	var entity T
	result := db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Scope modifies a query.
type Scope = func(*gorm.DB) *gorm.DB

// Preload returns a scope preloading the named associations.
func Preload(names ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		for _, name := range names {
			db = db.Preload(name)
		}
		return db
	}
}

// FindPage runs query for one page, ordered by order, and counts the
// unpaged total. query carries the model and any filters; scopes apply to
// the row query only.
func FindPage[T any](ctx context.Context, query *gorm.DB, req pagination.Request, order string, scopes ...Scope) ([]T, int64, error) {
	var total int64
	if err := query.WithContext(ctx).Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []T
	if total == 0 {
		return entities, 0, nil
	}

	find := query.WithContext(ctx).Session(&gorm.Session{}).Scopes(scopes...)
	if err := find.Order(order).Limit(req.Size).Offset(req.Offset()).Find(&entities).Error; err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Count returns the total number of entities.
func Count[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	var entity T
	if err := db.WithContext(ctx).Model(&entity).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
