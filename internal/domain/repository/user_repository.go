package repository

import (
	"context"
	"errors"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
)

// ErrDuplicateEmail is returned by Save when the email is already taken.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository persists users. Lookups return (nil, nil) when the user
// does not exist; callers decide whether absence is an error.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
