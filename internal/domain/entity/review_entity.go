package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	RatingMin = 1
	RatingMax = 7
)

// ErrInvalidRating is returned when a rating falls outside [RatingMin, RatingMax].
var ErrInvalidRating = errors.New("invalid review rating")

// Review is a user's rating of a product. The id is a UUID assigned at
// construction so it is stable before persistence; CreatedAt is assigned
// by the repository when the row is written.
type Review struct {
	ReviewID  string    `json:"reviewId"`
	ProductID int64     `json:"productId"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewReview validates the rating and builds an unsaved review with a
// fresh id. Whether the referenced product and user exist is the storage
// layer's concern.
func NewReview(productID, userID int64, rating int, comment string) (*Review, error) {
	if rating < RatingMin || rating > RatingMax {
		return nil, fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidRating, rating, RatingMin, RatingMax)
	}
	return &Review{
		ReviewID:  uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}, nil
}
