package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
)

// MediaService looks up media items of any variant.
type MediaService struct {
	base
}

// NewMediaService creates a media service.
func NewMediaService(deps Deps) *MediaService {
	return &MediaService{base: newBase(deps, "media-service")}
}

// Get resolves id to its movie or game.
func (s *MediaService) Get(ctx context.Context, id uint) (domain.MediaItem, error) {
	return s.resolver.Resolve(ctx, s.store, id)
}
