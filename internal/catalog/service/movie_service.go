package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// MovieService manages movies.
type MovieService struct {
	base
}

// NewMovieService creates a movie service.
func NewMovieService(deps Deps) *MovieService {
	return &MovieService{base: newBase(deps, "movie-service")}
}

// Search returns one page of movies matching every active filter.
func (s *MovieService) Search(ctx context.Context, filter domain.MovieFilter, req pagination.Request) (pagination.Page[domain.Movie], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.Movie]{}, err
	}
	movies, total, err := s.store.Movies().FindAll(ctx, filter.Specification(), req)
	if err != nil {
		return pagination.Page[domain.Movie]{}, err
	}
	return pagination.NewPage(movies, req, total), nil
}

func (s *MovieService) Get(ctx context.Context, id uint) (*domain.Movie, error) {
	return s.store.Movies().FindByID(ctx, id)
}

// Create stores a movie owned by the principal.
func (s *MovieService) Create(ctx context.Context, p auth.Principal, input domain.MovieInput) (*domain.Movie, error) {
	if err := s.guard.AuthorizeCreate(p, auth.ResourceMedia); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateMovieInput(input); err != nil {
		return nil, err
	}

	var movie *domain.Movie
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		created := &domain.Movie{Media: domain.Media{CreatorID: p.UserID}}
		if err := applyMovieInput(ctx, tx, created, input); err != nil {
			return err
		}
		if err := tx.Movies().Create(ctx, created); err != nil {
			return err
		}

		var err error
		movie, err = tx.Movies().FindByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Movie created", interfaces.Uint("movie_id", movie.ID), principalField(p))
	s.publish(ctx, s.changed("created", movie))
	return movie, nil
}

// Update replaces the fields and crew roles of a movie. The creator never changes.
func (s *MovieService) Update(ctx context.Context, p auth.Principal, id uint, input domain.MovieInput) (*domain.Movie, error) {
	if err := s.guard.Authenticated(p); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateMovieInput(input); err != nil {
		return nil, err
	}

	var movie *domain.Movie
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		current, err := tx.Movies().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeUpdate(p, auth.ResourceMedia, current.CreatorID); err != nil {
			return err
		}

		if err := applyMovieInput(ctx, tx, current, input); err != nil {
			return err
		}
		if err := tx.Movies().Update(ctx, current); err != nil {
			return err
		}

		movie, err = tx.Movies().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Movie updated", interfaces.Uint("movie_id", id), principalField(p))
	s.publish(ctx, s.changed("updated", movie))
	return movie, nil
}

// Delete removes a movie with its likes and reviews. Only the creator or an
// admin may do so.
func (s *MovieService) Delete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(movie *domain.Movie) error {
		return s.guard.AuthorizeDelete(p, auth.ResourceMedia, movie.CreatorID)
	})
}

// AdminDelete removes any movie. The creator is not consulted.
func (s *MovieService) AdminDelete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(*domain.Movie) error {
		return s.guard.AuthorizeAdminDelete(p, auth.ResourceMedia)
	})
}

func (s *MovieService) delete(ctx context.Context, p auth.Principal, id uint, authorize func(*domain.Movie) error) error {
	if err := s.guard.Authenticated(p); err != nil {
		return err
	}

	var movie *domain.Movie
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		movie, err = tx.Movies().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(movie); err != nil {
			return err
		}
		if err := tx.Movies().Delete(ctx, id); err != nil {
			return err
		}
		return removeChildRecords(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Movie deleted", interfaces.Uint("movie_id", id), principalField(p))
	s.publish(ctx, s.changed("deleted", movie))
	return nil
}

func (s *MovieService) changed(action string, movie *domain.Movie) pending {
	var evts pending
	evts.add("movie", action, movie.ID, map[string]interface{}{
		"title":      movie.Title,
		"creator_id": movie.CreatorID,
	})
	return evts
}

// validateMovieInput checks the payload and the character name rule of every role.
func validateMovieInput(input domain.MovieInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	for _, role := range input.CrewRoles {
		if err := domain.ValidateCrewRole(role.Role, role.CharacterName); err != nil {
			return err
		}
	}
	return nil
}

// applyMovieInput resolves the crew of input and copies it onto movie.
func applyMovieInput(ctx context.Context, tx repository.Store, movie *domain.Movie, input domain.MovieInput) error {
	crewIDs := make([]uint, len(input.CrewRoles))
	for i, role := range input.CrewRoles {
		crewIDs[i] = role.CrewID
	}
	crewIDs = uniqueIDs(crewIDs)

	crew, err := tx.Crew().FindByIDs(ctx, crewIDs)
	if err != nil {
		return err
	}
	if len(crew) != len(crewIDs) {
		return domain.ErrCrewNotFound
	}
	byID := make(map[uint]*domain.MovieCrew, len(crew))
	for i := range crew {
		byID[crew[i].ID] = &crew[i]
	}

	roles := make([]domain.MovieCrewRole, len(input.CrewRoles))
	for i, role := range input.CrewRoles {
		roles[i] = domain.MovieCrewRole{
			CrewID:        role.CrewID,
			Crew:          byID[role.CrewID],
			Role:          role.Role,
			CharacterName: role.CharacterName,
		}
	}

	applyMediaInput(&movie.Media, input.MediaInput)
	movie.Duration = input.Duration
	movie.CrewRoles = roles
	return nil
}
