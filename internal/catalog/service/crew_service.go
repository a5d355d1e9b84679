package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// CrewService manages movie crew members. Entries are owned by their creator.
type CrewService struct {
	base
}

// NewCrewService creates a crew service.
func NewCrewService(deps Deps) *CrewService {
	return &CrewService{base: newBase(deps, "crew-service")}
}

// List returns one page of crew, optionally filtered by a full name fragment.
func (s *CrewService) List(ctx context.Context, fullName string, req pagination.Request) (pagination.Page[domain.MovieCrew], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.MovieCrew]{}, err
	}
	items, total, err := s.store.Crew().FindAll(ctx, domain.NameFilter("full_name", fullName), req)
	if err != nil {
		return pagination.Page[domain.MovieCrew]{}, err
	}
	return pagination.NewPage(items, req, total), nil
}

func (s *CrewService) Get(ctx context.Context, id uint) (*domain.MovieCrew, error) {
	return s.store.Crew().FindByID(ctx, id)
}

// Create adds a crew member owned by the principal.
func (s *CrewService) Create(ctx context.Context, p auth.Principal, input domain.CrewInput) (*domain.MovieCrew, error) {
	if err := s.guard.AuthorizeCreate(p, auth.ResourceCrew); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	crew := &domain.MovieCrew{
		FullName:  input.FullName,
		BirthDate: domain.DateOnly(input.BirthDate),
		CreatorID: p.UserID,
	}
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Crew().FindByFullNameIgnoreCaseAndBirthDate(ctx, crew.FullName, crew.BirthDate)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrCrewAlreadyExists
		}
		return tx.Crew().Create(ctx, crew)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Crew member created", interfaces.Uint("crew_id", crew.ID), principalField(p))
	s.publish(ctx, s.changed("created", crew))
	return crew, nil
}

// Update changes a crew member. Only the creator or an admin may do so.
func (s *CrewService) Update(ctx context.Context, p auth.Principal, id uint, input domain.CrewInput) (*domain.MovieCrew, error) {
	if err := s.guard.Authenticated(p); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var crew *domain.MovieCrew
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		crew, err = tx.Crew().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeUpdate(p, auth.ResourceCrew, crew.CreatorID); err != nil {
			return err
		}

		birthDate := domain.DateOnly(input.BirthDate)
		existing, err := tx.Crew().FindByFullNameIgnoreCaseAndBirthDate(ctx, input.FullName, birthDate)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return domain.ErrCrewAlreadyExists
		}

		crew.FullName = input.FullName
		crew.BirthDate = birthDate
		return tx.Crew().Update(ctx, crew)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Crew member updated", interfaces.Uint("crew_id", id), principalField(p))
	s.publish(ctx, s.changed("updated", crew))
	return crew, nil
}

// Delete removes a crew member owned by the principal, or any for an admin.
func (s *CrewService) Delete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(crew *domain.MovieCrew) error {
		return s.guard.AuthorizeDelete(p, auth.ResourceCrew, crew.CreatorID)
	})
}

// AdminDelete removes any crew member. The creator is not consulted.
func (s *CrewService) AdminDelete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(*domain.MovieCrew) error {
		return s.guard.AuthorizeAdminDelete(p, auth.ResourceCrew)
	})
}

func (s *CrewService) delete(ctx context.Context, p auth.Principal, id uint, authorize func(*domain.MovieCrew) error) error {
	if err := s.guard.Authenticated(p); err != nil {
		return err
	}

	var crew *domain.MovieCrew
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		crew, err = tx.Crew().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(crew); err != nil {
			return err
		}

		inUse, err := tx.Crew().IsReferenced(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return domain.ErrCatalogEntryInUse
		}
		return tx.Crew().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Crew member deleted", interfaces.Uint("crew_id", id), principalField(p))
	s.publish(ctx, s.changed("deleted", crew))
	return nil
}

func (s *CrewService) changed(action string, crew *domain.MovieCrew) pending {
	var evts pending
	evts.add("crew", action, crew.ID, map[string]interface{}{
		"full_name":  crew.FullName,
		"creator_id": crew.CreatorID,
	})
	return evts
}
