package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// LikeService manages likes. A user likes a media item at most once.
type LikeService struct {
	base
}

// NewLikeService creates a like service.
func NewLikeService(deps Deps) *LikeService {
	return &LikeService{base: newBase(deps, "like-service")}
}

// Create records that the principal likes mediaID. The duplicate check runs
// before the user and the media are resolved.
func (s *LikeService) Create(ctx context.Context, p auth.Principal, mediaID uint) (*domain.Like, error) {
	if err := s.guard.AuthorizeCreate(p, auth.ResourceLike); err != nil {
		return nil, err
	}

	var like *domain.Like
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Likes().FindByMediaIDAndUserID(ctx, mediaID, p.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyLiked
		}

		user, err := findActiveUser(ctx, tx, p.UserID)
		if err != nil {
			return err
		}
		media, err := s.resolver.Resolve(ctx, tx, mediaID)
		if err != nil {
			return err
		}

		like = &domain.Like{UserID: user.ID, MediaID: media.GetID()}
		return tx.Likes().Create(ctx, like)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Like created",
		interfaces.Uint("like_id", like.ID),
		interfaces.Uint("media_id", mediaID),
		principalField(p))
	s.publish(ctx, s.changed("created", like))
	return like, nil
}

// ListByUser returns one page of the likes of a user.
func (s *LikeService) ListByUser(ctx context.Context, userID string, req pagination.Request) (pagination.Page[domain.Like], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.Like]{}, err
	}
	if _, err := findActiveUser(ctx, s.store, userID); err != nil {
		return pagination.Page[domain.Like]{}, err
	}
	likes, total, err := s.store.Likes().FindByUserID(ctx, userID, req)
	if err != nil {
		return pagination.Page[domain.Like]{}, err
	}
	return pagination.NewPage(likes, req, total), nil
}

// ListByMedia returns one page of the likes of a media item.
func (s *LikeService) ListByMedia(ctx context.Context, mediaID uint, req pagination.Request) (pagination.Page[domain.Like], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.Like]{}, err
	}
	if _, err := s.resolver.Resolve(ctx, s.store, mediaID); err != nil {
		return pagination.Page[domain.Like]{}, err
	}
	likes, total, err := s.store.Likes().FindByMediaID(ctx, mediaID, req)
	if err != nil {
		return pagination.Page[domain.Like]{}, err
	}
	return pagination.NewPage(likes, req, total), nil
}

// Delete removes a like. Only its creator or an admin may do so.
func (s *LikeService) Delete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(like *domain.Like) error {
		return s.guard.AuthorizeDelete(p, auth.ResourceLike, like.UserID)
	})
}

// AdminDelete removes any like.
func (s *LikeService) AdminDelete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(*domain.Like) error {
		return s.guard.AuthorizeAdminDelete(p, auth.ResourceLike)
	})
}

func (s *LikeService) delete(ctx context.Context, p auth.Principal, id uint, authorize func(*domain.Like) error) error {
	if err := s.guard.Authenticated(p); err != nil {
		return err
	}

	var like *domain.Like
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		like, err = tx.Likes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(like); err != nil {
			return err
		}
		return tx.Likes().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Like deleted", interfaces.Uint("like_id", id), principalField(p))
	s.publish(ctx, s.changed("deleted", like))
	return nil
}

func (s *LikeService) changed(action string, like *domain.Like) pending {
	var evts pending
	evts.add("like", action, like.ID, map[string]interface{}{
		"user_id":  like.UserID,
		"media_id": like.MediaID,
	})
	return evts
}
