package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

type reviewRepository struct {
	db *gorm.DB
}

// Create stores a review. A unique violation on (user_id, media_id) is
// reported as ErrAlreadyReviewed.
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return translate(pkgrepo.Create(ctx, r.db, review, clause.Associations), domain.ErrReviewNotFound, domain.ErrAlreadyReviewed)
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	review, err := pkgrepo.FindByID[domain.Review](ctx, r.db, id)
	return review, translate(err, domain.ErrReviewNotFound, nil)
}

func (r *reviewRepository) FindByMediaIDAndUserID(ctx context.Context, mediaID uint, userID string) (*domain.Review, error) {
	return notFoundAsNil(pkgrepo.FindOneBy[domain.Review](ctx, r.db, "media_id = ? AND user_id = ?", mediaID, userID))
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID string, page pagination.Request) ([]domain.Review, int64, error) {
	query := r.db.Model(&domain.Review{}).Where("user_id = ?", userID)
	return pkgrepo.FindPage[domain.Review](ctx, query, page, "id")
}

func (r *reviewRepository) FindByMediaID(ctx context.Context, mediaID uint, page pagination.Request) ([]domain.Review, int64, error) {
	query := r.db.Model(&domain.Review{}).Where("media_id = ?", mediaID)
	return pkgrepo.FindPage[domain.Review](ctx, query, page, "id")
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	return translate(pkgrepo.Update(ctx, r.db, review), domain.ErrReviewNotFound, domain.ErrAlreadyReviewed)
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return translate(pkgrepo.Delete[domain.Review](ctx, r.db, id), domain.ErrReviewNotFound, nil)
}

func (r *reviewRepository) DeleteByMediaID(ctx context.Context, mediaID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("media_id = ?", mediaID).Delete(&domain.Review{})
	return result.RowsAffected, result.Error
}
