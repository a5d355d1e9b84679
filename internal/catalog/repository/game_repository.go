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

var gamePreloads = pkgrepo.Preload("Developer", "Genres", "Platforms")

type gameRepository struct {
	db *gorm.DB
}

// Create allocates the media id and stores the game with its genre and
// platform links. Referenced catalog rows are never written.
func (r *gameRepository) Create(ctx context.Context, game *domain.Game) error {
	id, err := (&mediaKeyRepository{db: r.db}).Allocate(ctx, domain.MediaTypeGame)
	if err != nil {
		return err
	}
	game.ID = id

	return r.db.WithContext(ctx).
		Omit("Developer", "Genres.*", "Platforms.*").
		Create(game).Error
}

func (r *gameRepository) FindByID(ctx context.Context, id uint) (*domain.Game, error) {
	var game domain.Game
	err := r.db.WithContext(ctx).
		Scopes(withCounts("games"), gamePreloads).
		Where("games.id = ?", id).
		First(&game).Error
	if err != nil {
		return nil, translate(err, domain.ErrGameNotFound, nil)
	}
	return &game, nil
}

func (r *gameRepository) FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]domain.Game, int64, error) {
	query := applySpec(r.db.Model(&domain.Game{}), spec)
	return pkgrepo.FindPage[domain.Game](ctx, query, page, "games.id", withCounts("games"), gamePreloads)
}

// Update saves the scalar fields and replaces the genre and platform links.
func (r *gameRepository) Update(ctx context.Context, game *domain.Game) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Save(game).Error; err != nil {
		return err
	}
	if err := db.Model(game).Association("Genres").Replace(game.Genres); err != nil {
		return err
	}
	return db.Model(game).Association("Platforms").Replace(game.Platforms)
}

// Delete removes the game and its link rows. Genres and platforms stay.
func (r *gameRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Select("Genres", "Platforms").
		Delete(&domain.Game{Media: domain.Media{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}
