package repository

import (
	"context"
	"time"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// Lookups named Find...By... other than FindByID return (nil, nil) when no
// row matches. FindByID returns the entity's not-found error.

// CatalogRepository stores one reference catalog (developers, genres or platforms).
type CatalogRepository[T any] interface {
	Create(ctx context.Context, entry *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindByIDs(ctx context.Context, ids []uint) ([]T, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*T, error)
	FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]T, int64, error)
	Update(ctx context.Context, entry *T) error
	Delete(ctx context.Context, id uint) error
	IsReferenced(ctx context.Context, id uint) (bool, error)
}

// CrewRepository stores movie crew members.
type CrewRepository interface {
	Create(ctx context.Context, crew *domain.MovieCrew) error
	FindByID(ctx context.Context, id uint) (*domain.MovieCrew, error)
	FindByIDs(ctx context.Context, ids []uint) ([]domain.MovieCrew, error)
	FindByFullNameIgnoreCaseAndBirthDate(ctx context.Context, fullName string, birthDate time.Time) (*domain.MovieCrew, error)
	FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]domain.MovieCrew, int64, error)
	Update(ctx context.Context, crew *domain.MovieCrew) error
	Delete(ctx context.Context, id uint) error
	IsReferenced(ctx context.Context, id uint) (bool, error)
}

// GameRepository stores games with their genre and platform links.
type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) error
	FindByID(ctx context.Context, id uint) (*domain.Game, error)
	FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]domain.Game, int64, error)
	Update(ctx context.Context, game *domain.Game) error
	Delete(ctx context.Context, id uint) error
}

// MovieRepository stores movies with their ordered crew roles.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id uint) (*domain.Movie, error)
	FindAll(ctx context.Context, spec specification.Specification, page pagination.Request) ([]domain.Movie, int64, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id uint) error
}

// UserRepository stores users. Deletion is logical and goes through Update.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindActiveByUserNameIgnoreCase(ctx context.Context, userName string) (*domain.User, error)
	FindAll(ctx context.Context, page pagination.Request) ([]domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
}

// LikeRepository stores likes.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	FindByID(ctx context.Context, id uint) (*domain.Like, error)
	FindByMediaIDAndUserID(ctx context.Context, mediaID uint, userID string) (*domain.Like, error)
	FindByUserID(ctx context.Context, userID string, page pagination.Request) ([]domain.Like, int64, error)
	FindByMediaID(ctx context.Context, mediaID uint, page pagination.Request) ([]domain.Like, int64, error)
	Delete(ctx context.Context, id uint) error
	DeleteByMediaID(ctx context.Context, mediaID uint) (int64, error)
}

// ReviewRepository stores reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id uint) (*domain.Review, error)
	FindByMediaIDAndUserID(ctx context.Context, mediaID uint, userID string) (*domain.Review, error)
	FindByUserID(ctx context.Context, userID string, page pagination.Request) ([]domain.Review, int64, error)
	FindByMediaID(ctx context.Context, mediaID uint, page pagination.Request) ([]domain.Review, int64, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uint) error
	DeleteByMediaID(ctx context.Context, mediaID uint) (int64, error)
}

// MediaKeyRepository allocates ids shared by all media variants.
type MediaKeyRepository interface {
	Allocate(ctx context.Context, mediaType domain.MediaType) (uint, error)
	Delete(ctx context.Context, id uint) error
}

// Store groups the repositories of one database handle. Repositories
// obtained inside Transaction use the transaction.
type Store interface {
	Developers() CatalogRepository[domain.Developer]
	Genres() CatalogRepository[domain.Genre]
	Platforms() CatalogRepository[domain.Platform]
	Crew() CrewRepository
	Games() GameRepository
	Movies() MovieRepository
	Users() UserRepository
	Likes() LikeRepository
	Reviews() ReviewRepository
	MediaKeys() MediaKeyRepository

	Transaction(ctx context.Context, fn func(Store) error) error
}
