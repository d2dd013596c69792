package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
	repo "github.com/cosmelog/cosme-review-api/internal/domain/repository"
	"github.com/cosmelog/cosme-review-api/pkg/apperrors"
)

type ReviewService struct {
	Repo   repo.ReviewRepository
	Logger *logrus.Logger
}

func NewReviewService(repo repo.ReviewRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Repo: repo, Logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, productID, userID int64, rating int, comment string) (*entity.Review, error) {
	rv, err := entity.NewReview(productID, userID, rating, comment)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidRating) {
			return nil, apperrors.NewValidation("Rating must be between 1 and 7")
		}
		return nil, apperrors.NewInternal("Failed to build review", err)
	}
	if err := s.Repo.Save(ctx, rv); err != nil {
		if errors.Is(err, repo.ErrReferenceNotFound) {
			return nil, apperrors.NewNotFound("Product or User not found")
		}
		return nil, apperrors.NewInternal("Failed to save review", err)
	}
	return rv, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	if productID <= 0 {
		return nil, apperrors.NewValidation("Invalid product ID")
	}
	reviews, err := s.Repo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to list reviews", err)
	}
	return reviews, nil
}

// Erase deletes a review after checking the caller wrote it.
func (s *ReviewService) Erase(ctx context.Context, reviewID string, userID int64) error {
	rv, err := s.Repo.FindByID(ctx, reviewID)
	if err != nil {
		return apperrors.NewInternal("Failed to load review", err)
	}
	if rv == nil {
		return apperrors.NewNotFound("Review not found")
	}
	if rv.UserID != userID {
		return apperrors.NewForbidden("You can only delete your own reviews")
	}
	if err := s.Repo.Erase(ctx, reviewID); err != nil {
		return apperrors.NewInternal("Failed to delete review", err)
	}
	return nil
}
