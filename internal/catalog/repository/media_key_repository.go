package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

type mediaKeyRepository struct {
	db *gorm.DB
}

func (r *mediaKeyRepository) Allocate(ctx context.Context, mediaType domain.MediaType) (uint, error) {
	key := domain.MediaKey{MediaType: mediaType}
	if err := pkgrepo.Create(ctx, r.db, &key); err != nil {
		return 0, err
	}
	return key.ID, nil
}

func (r *mediaKeyRepository) Delete(ctx context.Context, id uint) error {
	return translate(pkgrepo.Delete[domain.MediaKey](ctx, r.db, id), domain.ErrMediaNotFound, nil)
}
