package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

func moviePreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CrewRoles", func(db *gorm.DB) *gorm.DB {
			return db.Order("movie_crew_roles.position")
		}).
		Preload("CrewRoles.Crew")
}

type movieRepository struct {
	db *gorm.DB
}

// Create allocates the media id and stores the movie followed by its crew
// roles in order.
func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	id, err := (&mediaKeyRepository{db: r.db}).Allocate(ctx, domain.MediaTypeMovie)
	if err != nil {
		return err
	}
	movie.ID = id

	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(movie).Error; err != nil {
		return err
	}
	return r.createRoles(db, movie)
}

func (r *movieRepository) createRoles(db *gorm.DB, movie *domain.Movie) error {
	if len(movie.CrewRoles) == 0 {
		return nil
	}
	for i := range movie.CrewRoles {
		movie.CrewRoles[i].ID = 0
		movie.CrewRoles[i].MovieID = movie.ID
		movie.CrewRoles[i].Position = i
	}
	return db.Omit("Crew").Create(&movie.CrewRoles).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.db.WithContext(ctx).
		Scopes(withCounts("movies"), moviePreloads).
		Where("movies.id = ?", id).
		First(&movie).Error
	if err != nil {
		return nil, translate(err, domain.ErrMovieNotFound, nil)
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]domain.Movie, int64, error) {
	query := applySpec(r.db.Model(&domain.Movie{}), spec)
	return pkgrepo.FindPage[domain.Movie](ctx, query, page, "movies.id", withCounts("movies"), moviePreloads)
}

// Update saves the scalar fields and rewrites the crew roles.
func (r *movieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Save(movie).Error; err != nil {
		return err
	}
	if err := db.Where("movie_id = ?", movie.ID).Delete(&domain.MovieCrewRole{}).Error; err != nil {
		return err
	}
	return r.createRoles(db, movie)
}

// Delete removes the movie and its crew roles. Crew members stay.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Select("CrewRoles").
		Delete(&domain.Movie{Media: domain.Media{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}
