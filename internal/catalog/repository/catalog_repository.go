package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

// catalogTable describes one reference catalog table.
type catalogTable struct {
	name          string
	notFound      error
	alreadyExists error
	referencedBy  string // query returning a row while the entry is in use
}

type catalogRepository[T any] struct {
	db    *gorm.DB
	table catalogTable
}

func newCatalogRepository[T any](db *gorm.DB, table catalogTable) *catalogRepository[T] {
	return &catalogRepository[T]{db: db, table: table}
}

func (r *catalogRepository[T]) Create(ctx context.Context, entry *T) error {
	return translate(pkgrepo.Create(ctx, r.db, entry), r.table.notFound, r.table.alreadyExists)
}

func (r *catalogRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	entry, err := pkgrepo.FindByID[T](ctx, r.db, id)
	return entry, translate(err, r.table.notFound, nil)
}

func (r *catalogRepository[T]) FindByIDs(ctx context.Context, ids []uint) ([]T, error) {
	var entries []T
	if len(ids) == 0 {
		return entries, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&entries).Error
	return entries, err
}

func (r *catalogRepository[T]) FindByNameIgnoreCase(ctx context.Context, name string) (*T, error) {
	return notFoundAsNil(pkgrepo.FindOneBy[T](ctx, r.db, "LOWER(name) = ?", lower(name)))
}

func (r *catalogRepository[T]) FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]T, int64, error) {
	var model T
	query := applySpec(r.db.Model(&model), spec)
	return pkgrepo.FindPage[T](ctx, query, page, "name, id")
}

func (r *catalogRepository[T]) Update(ctx context.Context, entry *T) error {
	return translate(pkgrepo.Update(ctx, r.db, entry), r.table.notFound, r.table.alreadyExists)
}

func (r *catalogRepository[T]) Delete(ctx context.Context, id uint) error {
	return translate(pkgrepo.Delete[T](ctx, r.db, id), r.table.notFound, nil)
}

func (r *catalogRepository[T]) IsReferenced(ctx context.Context, id uint) (bool, error) {
	var found []int
	if err := r.db.WithContext(ctx).Raw(r.table.referencedBy+" LIMIT 1", id).Scan(&found).Error; err != nil {
		return false, err
	}
	return len(found) > 0, nil
}
