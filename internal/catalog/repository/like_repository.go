package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

type likeRepository struct {
	db *gorm.DB
}

// Create stores a like. A unique violation on (user_id, media_id) is
// reported as ErrAlreadyLiked.
func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	return translate(pkgrepo.Create(ctx, r.db, like, clause.Associations), domain.ErrLikeNotFound, domain.ErrAlreadyLiked)
}

func (r *likeRepository) FindByID(ctx context.Context, id uint) (*domain.Like, error) {
	like, err := pkgrepo.FindByID[domain.Like](ctx, r.db, id)
	return like, translate(err, domain.ErrLikeNotFound, nil)
}

func (r *likeRepository) FindByMediaIDAndUserID(ctx context.Context, mediaID uint, userID string) (*domain.Like, error) {
	return notFoundAsNil(pkgrepo.FindOneBy[domain.Like](ctx, r.db, "media_id = ? AND user_id = ?", mediaID, userID))
}

func (r *likeRepository) FindByUserID(ctx context.Context, userID string, page pagination.Request) ([]domain.Like, int64, error) {
	query := r.db.Model(&domain.Like{}).Where("user_id = ?", userID)
	return pkgrepo.FindPage[domain.Like](ctx, query, page, "id")
}

func (r *likeRepository) FindByMediaID(ctx context.Context, mediaID uint, page pagination.Request) ([]domain.Like, int64, error) {
	query := r.db.Model(&domain.Like{}).Where("media_id = ?", mediaID)
	return pkgrepo.FindPage[domain.Like](ctx, query, page, "id")
}

func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	return translate(pkgrepo.Delete[domain.Like](ctx, r.db, id), domain.ErrLikeNotFound, nil)
}

func (r *likeRepository) DeleteByMediaID(ctx context.Context, mediaID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("media_id = ?", mediaID).Delete(&domain.Like{})
	return result.RowsAffected, result.Error
}
