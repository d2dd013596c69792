package repository

import (
	"context"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
)

// ProductRepository persists products. FindByID returns (nil, nil) when
// the product does not exist.
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	UpdateImageURL(ctx context.Context, id int64, imageURL string) error
}
