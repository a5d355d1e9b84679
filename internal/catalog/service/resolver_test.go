package service_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/internal/catalog/service"
)

func TestResolver_OrderIsMovieThenGame(t *testing.T) {
	r := service.NewResolver()
	assert.Equal(t, []domain.MediaType{domain.MediaTypeMovie, domain.MediaTypeGame}, r.Order())
}

func TestResolver_FirstHitWins(t *testing.T) {
	var calls []string
	r := &service.Resolver{}
	r.Register(domain.MediaTypeMovie, func(ctx context.Context, _ repository.Store, id uint) (domain.MediaItem, error) {
		calls = append(calls, "movie")
		return &domain.Movie{Media: domain.Media{ID: id, Title: "movie"}}, nil
	})
	r.Register(domain.MediaTypeGame, func(ctx context.Context, _ repository.Store, id uint) (domain.MediaItem, error) {
		calls = append(calls, "game")
		return &domain.Game{Media: domain.Media{ID: id, Title: "game"}}, nil
	})

	item, err := r.Resolve(context.Background(), nil, 7)
	require.NoError(t, err)
	assert.Equal(t, "movie", item.GetTitle())
	assert.Equal(t, []string{"movie"}, calls)
}

func TestResolver_VariantErrorsCountAsMiss(t *testing.T) {
	r := &service.Resolver{}
	r.Register(domain.MediaTypeMovie, func(context.Context, repository.Store, uint) (domain.MediaItem, error) {
		return nil, stderrors.New("connection reset")
	})
	r.Register(domain.MediaTypeGame, func(_ context.Context, _ repository.Store, id uint) (domain.MediaItem, error) {
		return &domain.Game{Media: domain.Media{ID: id}}, nil
	})

	item, err := r.Resolve(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.MediaTypeGame, item.GetMediaType())
}

func TestResolver_AllMissesIsMediaNotFound(t *testing.T) {
	r := &service.Resolver{}
	r.Register(domain.MediaTypeMovie, func(context.Context, repository.Store, uint) (domain.MediaItem, error) {
		return nil, domain.ErrMovieNotFound
	})
	r.Register(domain.MediaTypeGame, func(context.Context, repository.Store, uint) (domain.MediaItem, error) {
		return (*domain.Game)(nil), nil
	})

	_, err := r.Resolve(context.Background(), nil, 3)
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
}
