package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
)

// MediaLookup finds one media variant by id.
type MediaLookup func(ctx context.Context, store repository.Store, id uint) (domain.MediaItem, error)

type mediaVariant struct {
	mediaType domain.MediaType
	lookup    MediaLookup
}

// Resolver finds a media item by id without a type hint. Variants are
// tried in registration order and the first hit wins: movies, then games.
type Resolver struct {
	variants []mediaVariant
}

// NewResolver returns a resolver with the movie and game variants registered.
func NewResolver() *Resolver {
	r := &Resolver{}
	r.Register(domain.MediaTypeMovie, func(ctx context.Context, store repository.Store, id uint) (domain.MediaItem, error) {
		return store.Movies().FindByID(ctx, id)
	})
	r.Register(domain.MediaTypeGame, func(ctx context.Context, store repository.Store, id uint) (domain.MediaItem, error) {
		return store.Games().FindByID(ctx, id)
	})
	return r
}

// Register appends a variant after the existing ones.
func (r *Resolver) Register(mediaType domain.MediaType, lookup MediaLookup) {
	r.variants = append(r.variants, mediaVariant{mediaType: mediaType, lookup: lookup})
}

// Order returns the variant types in lookup order.
func (r *Resolver) Order() []domain.MediaType {
	order := make([]domain.MediaType, len(r.variants))
	for i, v := range r.variants {
		order[i] = v.mediaType
	}
	return order
}

// Resolve returns the first variant holding id. A failed lookup counts as a
// miss for that variant; ErrMediaNotFound is returned when every variant misses.
func (r *Resolver) Resolve(ctx context.Context, store repository.Store, id uint) (domain.MediaItem, error) {
	for _, v := range r.variants {
		item, err := v.lookup(ctx, store, id)
		if err != nil || isNilItem(item) {
			continue
		}
		return item, nil
	}
	return nil, domain.ErrMediaNotFound
}

func isNilItem(item domain.MediaItem) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *domain.Movie:
		return v == nil
	case *domain.Game:
		return v == nil
	}
	return false
}
