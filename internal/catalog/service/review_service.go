package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// ReviewService manages reviews. A user reviews a media item at most once.
type ReviewService struct {
	base
}

// NewReviewService creates a review service.
func NewReviewService(deps Deps) *ReviewService {
	return &ReviewService{base: newBase(deps, "review-service")}
}

// Create stores the principal's review of mediaID. The duplicate check runs
// before the user and the media are resolved.
func (s *ReviewService) Create(ctx context.Context, p auth.Principal, mediaID uint, input domain.ReviewInput) (*domain.Review, error) {
	if err := s.guard.AuthorizeCreate(p, auth.ResourceReview); err != nil {
		return nil, err
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var review *domain.Review
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Reviews().FindByMediaIDAndUserID(ctx, mediaID, p.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyReviewed
		}

		user, err := findActiveUser(ctx, tx, p.UserID)
		if err != nil {
			return err
		}
		media, err := s.resolver.Resolve(ctx, tx, mediaID)
		if err != nil {
			return err
		}

		review = &domain.Review{
			UserID:        user.ID,
			MediaID:       media.GetID(),
			Score:         input.Score,
			WrittenReview: input.WrittenReview,
		}
		return tx.Reviews().Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Review created",
		interfaces.Uint("review_id", review.ID),
		interfaces.Uint("media_id", mediaID),
		principalField(p))
	s.publish(ctx, s.changed("created", review))
	return review, nil
}

// ListByUser returns one page of the reviews of a user.
func (s *ReviewService) ListByUser(ctx context.Context, userID string, req pagination.Request) (pagination.Page[domain.Review], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.Review]{}, err
	}
	if _, err := findActiveUser(ctx, s.store, userID); err != nil {
		return pagination.Page[domain.Review]{}, err
	}
	reviews, total, err := s.store.Reviews().FindByUserID(ctx, userID, req)
	if err != nil {
		return pagination.Page[domain.Review]{}, err
	}
	return pagination.NewPage(reviews, req, total), nil
}

// ListByMedia returns one page of the reviews of a media item.
func (s *ReviewService) ListByMedia(ctx context.Context, mediaID uint, req pagination.Request) (pagination.Page[domain.Review], error) {
	req, err := s.page(req)
	if err != nil {
		return pagination.Page[domain.Review]{}, err
	}
	if _, err := s.resolver.Resolve(ctx, s.store, mediaID); err != nil {
		return pagination.Page[domain.Review]{}, err
	}
	reviews, total, err := s.store.Reviews().FindByMediaID(ctx, mediaID, req)
	if err != nil {
		return pagination.Page[domain.Review]{}, err
	}
	return pagination.NewPage(reviews, req, total), nil
}

// Update changes the score and/or text of a review. Only its creator or an
// admin may do so. The (user, media) pair is not rechecked.
func (s *ReviewService) Update(ctx context.Context, p auth.Principal, id uint, input domain.ReviewUpdate) (*domain.Review, error) {
	if err := s.guard.Authenticated(p); err != nil {
		return nil, err
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if input.Score == nil && input.WrittenReview == nil {
		return nil, domain.ErrEmptyReviewUpdate
	}

	var review *domain.Review
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		review, err = tx.Reviews().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.guard.AuthorizeUpdate(p, auth.ResourceReview, review.UserID); err != nil {
			return err
		}

		if input.Score != nil {
			review.Score = *input.Score
		}
		if input.WrittenReview != nil {
			review.WrittenReview = *input.WrittenReview
		}
		return tx.Reviews().Update(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Review updated", interfaces.Uint("review_id", id), principalField(p))
	s.publish(ctx, s.changed("updated", review))
	return review, nil
}

// Delete removes a review. Only its creator or an admin may do so.
func (s *ReviewService) Delete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(review *domain.Review) error {
		return s.guard.AuthorizeDelete(p, auth.ResourceReview, review.UserID)
	})
}

// AdminDelete removes any review.
func (s *ReviewService) AdminDelete(ctx context.Context, p auth.Principal, id uint) error {
	return s.delete(ctx, p, id, func(*domain.Review) error {
		return s.guard.AuthorizeAdminDelete(p, auth.ResourceReview)
	})
}

func (s *ReviewService) delete(ctx context.Context, p auth.Principal, id uint, authorize func(*domain.Review) error) error {
	if err := s.guard.Authenticated(p); err != nil {
		return err
	}

	var review *domain.Review
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		review, err = tx.Reviews().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(review); err != nil {
			return err
		}
		return tx.Reviews().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Review deleted", interfaces.Uint("review_id", id), principalField(p))
	s.publish(ctx, s.changed("deleted", review))
	return nil
}

func (s *ReviewService) changed(action string, review *domain.Review) pending {
	var evts pending
	evts.add("review", action, review.ID, map[string]interface{}{
		"user_id":  review.UserID,
		"media_id": review.MediaID,
		"score":    review.Score,
	})
	return evts
}
