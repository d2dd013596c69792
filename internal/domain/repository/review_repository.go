package repository

import (
	"context"
	"errors"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
)

// ErrReferenceNotFound is returned by Save when the referenced product or
// user row does not exist.
var ErrReferenceNotFound = errors.New("referenced product or user not found")

// ReviewRepository persists reviews. FindByID returns (nil, nil) when the
// review does not exist; FindByProductID orders newest first.
type ReviewRepository interface {
	Save(ctx context.Context, review *entity.Review) error
	FindByProductID(ctx context.Context, productID int64) ([]*entity.Review, error)
	FindByID(ctx context.Context, reviewID string) (*entity.Review, error)
	Erase(ctx context.Context, reviewID string) error
}
