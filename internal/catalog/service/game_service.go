package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// GameService manages games.
type GameService struct {
	base
}

// NewGameService creates a game service.
func NewGameService(deps Deps) *GameService {
	return &GameService{base: newBase(deps, "game-service")}
}

// Search returns one page of games matching every active filter.
func (s *GameService) Search(ctx context.Context, filter domain.GameFilter, req pagination.Request) (pagination.Page[domain.Game], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.Game]{}, err
	}
	games, total, err := s.store.Games().FindAll(ctx, filter.Specification(), req)
	if err != nil {
		return pagination.Page[domain.Game]{}, err
	}
	return pagination.NewPage(games, req, total), nil
}

func (s *GameService) Get(ctx context.Context, id uint) (*domain.Game, error) {
	return s.store.Games().FindByID(ctx, id)
}

// Create stores a game owned by the principal. Every referenced developer,
// genre and platform must exist.
func (s *GameService) Create(ctx context.Context, p auth.Principal, input domain.GameInput) (*domain.Game, error) {
	if err := s.guard.AuthorizeCreate(p, auth.ResourceMedia); err != nil {
		return nil, err
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var game *domain.Game
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		created := &domain.Game{Media: domain.Media{CreatorID: p.UserID}}
		if err := applyGameInput(ctx, tx, created, input); err != nil {
			return err
		}
		if err := tx.Games().Create(ctx, created); err != nil {
			return err
		}

		var err error
		game, err = tx.Games().FindByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Game created", interfaces.Uint("game_id", game.ID), principalField(p))
	s.publish(ctx, s.changed("created", game))
	return game, nil
}

// Update replaces the fields of a game. The creator never changes.
func (s *GameService) Update(ctx context.Context, p auth.Principal, id uint, input domain.GameInput) (*domain.Game, error) {
	if err := s.guard.Authenticated(p); err != nil {
		return nil, err
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var game *domain.Game
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		current, err := tx.Games().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeUpdate(p, auth.ResourceMedia, current.CreatorID); err != nil {
			return err
		}

		if err := applyGameInput(ctx, tx, current, input); err != nil {
			return err
		}
		if err := tx.Games().Update(ctx, current); err != nil {
			return err
		}

		game, err = tx.Games().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Game updated", interfaces.Uint("game_id", id), principalField(p))
	s.publish(ctx, s.changed("updated", game))
	return game, nil
}

// Delete removes a game with its likes and reviews. Only the creator or an
// admin may do so.
func (s *GameService) Delete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(game *domain.Game) error {
		return s.guard.AuthorizeDelete(p, auth.ResourceMedia, game.CreatorID)
	})
}

// AdminDelete removes any game. The creator is not consulted.
func (s *GameService) AdminDelete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(*domain.Game) error {
		return s.guard.AuthorizeAdminDelete(p, auth.ResourceMedia)
	})
}

func (s *GameService) delete(ctx context.Context, p auth.Principal, id uint, authorize func(*domain.Game) error) error {
	if err := s.guard.Authenticated(p); err != nil {
		return err
	}

	var game *domain.Game
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		game, err = tx.Games().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(game); err != nil {
			return err
		}
		if err := tx.Games().Delete(ctx, id); err != nil {
			return err
		}
		return removeChildRecords(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Game deleted", interfaces.Uint("game_id", id), principalField(p))
	s.publish(ctx, s.changed("deleted", game))
	return nil
}

func (s *GameService) changed(action string, game *domain.Game) pending {
	var evts pending
	evts.add("game", action, game.ID, map[string]interface{}{
		"title":      game.Title,
		"creator_id": game.CreatorID,
	})
	return evts
}

// applyGameInput resolves the references of input and copies it onto game.
func applyGameInput(ctx context.Context, tx repository.Store, game *domain.Game, input domain.GameInput) error {
	developer, err := tx.Developers().FindByID(ctx, input.DeveloperID)
	if err != nil {
		return err
	}

	genreIDs := uniqueIDs(input.GenreIDs)
	genres, err := tx.Genres().FindByIDs(ctx, genreIDs)
	if err != nil {
		return err
	}
	if len(genres) != len(genreIDs) {
		return domain.ErrGenreNotFound
	}

	platformIDs := uniqueIDs(input.PlatformIDs)
	platforms, err := tx.Platforms().FindByIDs(ctx, platformIDs)
	if err != nil {
		return err
	}
	if len(platforms) != len(platformIDs) {
		return domain.ErrPlatformNotFound
	}

	applyMediaInput(&game.Media, input.MediaInput)
	game.DeveloperID = developer.ID
	game.Developer = developer
	game.Genres = genres
	game.Platforms = platforms
	game.Price = input.Price
	return nil
}

func applyMediaInput(media *domain.Media, input domain.MediaInput) {
	media.Title = input.Title
	media.Description = input.Description
	media.ReleaseDate = domain.DateOnly(input.ReleaseDate)
	media.MediaURL = input.MediaURL
	media.ImageURL = input.ImageURL
}

// removeChildRecords deletes the likes, reviews and media key of a deleted
// media item. Catalog entries it referenced are left alone.
func removeChildRecords(ctx context.Context, tx repository.Store, mediaID uint) error {
	if _, err := tx.Likes().DeleteByMediaID(ctx, mediaID); err != nil {
		return err
	}
	if _, err := tx.Reviews().DeleteByMediaID(ctx, mediaID); err != nil {
		return err
	}
	return tx.MediaKeys().Delete(ctx, mediaID)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
