package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	pkgrepo "github.com/narwhalmedia/catalog/pkg/repository"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return translate(pkgrepo.Create(ctx, r.db, user), domain.ErrUserNotFound, domain.ErrUserAlreadyExists)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := pkgrepo.FindOneBy[domain.User](ctx, r.db, "id = ?", id)
	return user, translate(err, domain.ErrUserNotFound, nil)
}

func (r *userRepository) FindActiveByUserNameIgnoreCase(ctx context.Context, userName string) (*domain.User, error) {
	return notFoundAsNil(pkgrepo.FindOneBy[domain.User](ctx, r.db,
		"active = ? AND LOWER(user_name) = ?", true, lower(userName)))
}

func (r *userRepository) FindAll(ctx context.Context, page pagination.Request) ([]domain.User, int64, error) {
	query := r.db.Model(&domain.User{}).Where("active = ?", true)
	return pkgrepo.FindPage[domain.User](ctx, query, page, "user_name, id")
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return translate(pkgrepo.Update(ctx, r.db, user), domain.ErrUserNotFound, domain.ErrUserNameTaken)
}
