package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

type crewRepository struct {
	db *gorm.DB
}

func (r *crewRepository) Create(ctx context.Context, crew *domain.MovieCrew) error {
	return translate(pkgrepo.Create(ctx, r.db, crew), domain.ErrCrewNotFound, domain.ErrCrewAlreadyExists)
}

func (r *crewRepository) FindByID(ctx context.Context, id uint) (*domain.MovieCrew, error) {
	crew, err := pkgrepo.FindByID[domain.MovieCrew](ctx, r.db, id)
	return crew, translate(err, domain.ErrCrewNotFound, nil)
}

func (r *crewRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.MovieCrew, error) {
	var crew []domain.MovieCrew
	if len(ids) == 0 {
		return crew, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&crew).Error
	return crew, err
}

func (r *crewRepository) FindByFullNameIgnoreCaseAndBirthDate(ctx context.Context, fullName string, birthDate time.Time) (*domain.MovieCrew, error) {
	return notFoundAsNil(pkgrepo.FindOneBy[domain.MovieCrew](ctx, r.db,
		"LOWER(full_name) = ? AND birth_date = ?", lower(fullName), domain.DateOnly(birthDate)))
}

func (r *crewRepository) FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]domain.MovieCrew, int64, error) {
	query := applySpec(r.db.Model(&domain.MovieCrew{}), spec)
	return pkgrepo.FindPage[domain.MovieCrew](ctx, query, page, "full_name, id")
}

func (r *crewRepository) Update(ctx context.Context, crew *domain.MovieCrew) error {
	return translate(pkgrepo.Update(ctx, r.db, crew), domain.ErrCrewNotFound, domain.ErrCrewAlreadyExists)
}

func (r *crewRepository) Delete(ctx context.Context, id uint) error {
	return translate(pkgrepo.Delete[domain.MovieCrew](ctx, r.db, id), domain.ErrCrewNotFound, nil)
}

func (r *crewRepository) IsReferenced(ctx context.Context, id uint) (bool, error) {
	return pkgrepo.Exists[domain.MovieCrewRole](ctx, r.db, "crew_id = ?", id)
}
