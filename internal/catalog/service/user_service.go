package service

import (
	"context"
	"errors"
	"time"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// UserService manages catalog users. The user id is the principal subject.
type UserService struct {
	base
	now func() time.Time
}

// NewUserService creates a user service.
func NewUserService(deps Deps) *UserService {
	return &UserService{
		base: newBase(deps, "user-service"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the user record of the principal. A logically deleted
// user registering again is reactivated under the new name.
func (s *UserService) Register(ctx context.Context, p auth.Principal, input domain.UserInput) (*domain.User, error) {
	if err := s.guard.AuthorizeCreate(p, auth.ResourceUser); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var user *domain.User
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Users().FindByID(ctx, p.UserID)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		if existing != nil && existing.Active {
			return domain.ErrUserAlreadyExists
		}
		if err := checkUserNameFree(ctx, tx, input.UserName, p.UserID); err != nil {
			return err
		}

		if existing != nil {
			existing.UserName = input.UserName
			existing.Active = true
			user = existing
			return tx.Users().Update(ctx, user)
		}
		user = &domain.User{
			ID:       p.UserID,
			UserName: input.UserName,
			JoinDate: s.now(),
			Active:   true,
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("User registered", interfaces.String("user_id", user.ID))
	s.publish(ctx, s.changed("registered", user))
	return user, nil
}

// Get returns an active user.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return findActiveUser(ctx, s.store, id)
}

// List returns one page of active users.
func (s *UserService) List(ctx context.Context, req pagination.Request) (pagination.Page[domain.User], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.User]{}, err
	}
	users, total, err := s.store.Users().FindAll(ctx, req)
	if err != nil {
		return pagination.Page[domain.User]{}, err
	}
	return pagination.NewPage(users, req, total), nil
}

// Rename changes the user name. Only the user or an admin may do so.
func (s *UserService) Rename(ctx context.Context, p auth.Principal, id string, input domain.UserInput) (*domain.User, error) {
	if err := s.guard.Authenticated(p); err != nil {
		return nil, err
	}
	input = input.Normalized()
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var user *domain.User
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		user, err = findActiveUser(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeUpdate(p, auth.ResourceUser, user.ID); err != nil {
			return err
		}
		if err := checkUserNameFree(ctx, tx, input.UserName, id); err != nil {
			return err
		}

		user.UserName = input.UserName
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("User renamed", interfaces.String("user_id", id), principalField(p))
	s.publish(ctx, s.changed("updated", user))
	return user, nil
}

// Delete deactivates the user. Only the user or an admin may do so.
func (s *UserService) Delete(ctx context.Context, p auth.Principal, id string) error {
	return s.deactivate(ctx, p, id, func(user *domain.User) error {
		return s.guard.AuthorizeDelete(p, auth.ResourceUser, user.ID)
	})
}

// AdminDelete deactivates any user.
func (s *UserService) AdminDelete(ctx context.Context, p auth.Principal, id string) error {
	return s.deactivate(ctx, p, id, func(*domain.User) error {
		return s.guard.AuthorizeAdminDelete(p, auth.ResourceUser)
	})
}

// deactivate is the logical delete. The row stays so likes and reviews keep
// their reference.
func (s *UserService) deactivate(ctx context.Context, p auth.Principal, id string, authorize func(*domain.User) error) error {
	if err := s.guard.Authenticated(p); err != nil {
		return err
	}

	var user *domain.User
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		user, err = findActiveUser(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := authorize(user); err != nil {
			return err
		}
		user.Deactivate()
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("User deactivated", interfaces.String("user_id", id), principalField(p))
	s.publish(ctx, s.changed("deleted", user))
	return nil
}

func (s *UserService) changed(action string, user *domain.User) pending {
	var evts pending
	evts.add("user", action, user.ID, map[string]interface{}{"user_name": user.UserName})
	return evts
}

// findActiveUser treats a deactivated user as missing.
func findActiveUser(ctx context.Context, store repository.Store, id string) (*domain.User, error) {
	user, err := store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func checkUserNameFree(ctx context.Context, tx repository.Store, userName, ownID string) error {
	holder, err := tx.Users().FindActiveByUserNameIgnoreCase(ctx, userName)
	if err != nil {
		return err
	}
	if holder != nil && holder.ID != ownID {
		return domain.ErrUserNameTaken
	}
	return nil
}
