package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// Entry is a pointer to a named catalog entity.
type Entry[T any] interface {
	*T
	GetID() uint
	GetName() string
	SetName(name string)
}

// CatalogService manages one reference catalog: developers, genres or platforms.
type CatalogService[T any, PT Entry[T]] struct {
	base
	aggregate     string
	repo          func(repository.Store) repository.CatalogRepository[T]
	alreadyExists error
}

// DeveloperService manages developers.
type DeveloperService = CatalogService[domain.Developer, *domain.Developer]

// GenreService manages genres.
type GenreService = CatalogService[domain.Genre, *domain.Genre]

// PlatformService manages platforms.
type PlatformService = CatalogService[domain.Platform, *domain.Platform]

// NewDeveloperService creates the developer catalog service.
func NewDeveloperService(deps Deps) *DeveloperService {
	return &DeveloperService{
		base:          newBase(deps, "developer-service"),
		aggregate:     "developer",
		repo:          repository.Store.Developers,
		alreadyExists: domain.ErrDeveloperAlreadyExists,
	}
}

// NewGenreService creates the genre catalog service.
func NewGenreService(deps Deps) *GenreService {
	return &GenreService{
		base:          newBase(deps, "genre-service"),
		aggregate:     "genre",
		repo:          repository.Store.Genres,
		alreadyExists: domain.ErrGenreAlreadyExists,
	}
}

// NewPlatformService creates the platform catalog service.
func NewPlatformService(deps Deps) *PlatformService {
	return &PlatformService{
		base:          newBase(deps, "platform-service"),
		aggregate:     "platform",
		repo:          repository.Store.Platforms,
		alreadyExists: domain.ErrPlatformAlreadyExists,
	}
}

// List returns one page of entries, optionally filtered by a name fragment.
func (s *CatalogService[T, PT]) List(ctx context.Context, name string, req pagination.Request) (pagination.Page[T], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[T]{}, err
	}
	items, total, err := s.repo(s.store).FindAll(ctx, domain.NameFilter("name", name), req)
	if err != nil {
		return pagination.Page[T]{}, err
	}
	return pagination.NewPage(items, req, total), nil
}

// Get returns the entry with id.
func (s *CatalogService[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo(s.store).FindByID(ctx, id)
}

// Create adds an entry. Names are unique ignoring case.
func (s *CatalogService[T, PT]) Create(ctx context.Context, p auth.Principal, input domain.CatalogInput) (*T, error) {
	if err := s.guard.AuthorizeCreate(p, auth.ResourceCatalog); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	entry := PT(new(T))
	entry.SetName(input.Name)

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		repo := s.repo(tx)
		existing, err := repo.FindByNameIgnoreCase(ctx, input.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return s.alreadyExists
		}
		return repo.Create(ctx, (*T)(entry))
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Catalog entry created",
		interfaces.String("aggregate", s.aggregate),
		interfaces.Uint("id", entry.GetID()),
		principalField(p))
	s.publish(ctx, pending{s.event("created", entry)})
	return (*T)(entry), nil
}

// Update renames an entry. Renaming to its own current name is allowed.
func (s *CatalogService[T, PT]) Update(ctx context.Context, p auth.Principal, id uint, input domain.CatalogInput) (*T, error) {
	if err := s.guard.Authenticated(p); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var updated *T
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		repo := s.repo(tx)
		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeCatalogUpdate(p); err != nil {
			return err
		}

		existing, err := repo.FindByNameIgnoreCase(ctx, input.Name)
		if err != nil {
			return err
		}
		if existing != nil && PT(existing).GetID() != id {
			return s.alreadyExists
		}

		PT(current).SetName(input.Name)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Catalog entry updated",
		interfaces.String("aggregate", s.aggregate),
		interfaces.Uint("id", id),
		principalField(p))
	s.publish(ctx, pending{s.event("updated", PT(updated))})
	return updated, nil
}

// Delete removes an entry the principal may delete.
func (s *CatalogService[T, PT]) Delete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, s.guard.AuthorizeCatalogDelete)
}

// AdminDelete removes an entry for a principal holding the catalog admin action.
func (s *CatalogService[T, PT]) AdminDelete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(p auth.Principal) error {
		return s.guard.AuthorizeAdminDelete(p, auth.ResourceCatalog)
	})
}

func (s *CatalogService[T, PT]) delete(ctx context.Context, p auth.Principal, id uint, authorize func(auth.Principal) error) error {
	if err := s.guard.Authenticated(p); err != nil {
		return err
	}

	var removed *T
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		repo := s.repo(tx)
		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(p); err != nil {
			return err
		}

		inUse, err := repo.IsReferenced(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return domain.ErrCatalogEntryInUse
		}
		removed = current
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Catalog entry deleted",
		interfaces.String("aggregate", s.aggregate),
		interfaces.Uint("id", id),
		principalField(p))
	s.publish(ctx, pending{s.event("deleted", PT(removed))})
	return nil
}

func (s *CatalogService[T, PT]) event(action string, entry PT) interfaces.Event {
	return events.NewAggregateEvent(s.aggregate, action, entry.GetID(),
		map[string]interface{}{"name": entry.GetName()})
}
