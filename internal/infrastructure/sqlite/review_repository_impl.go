package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
	"github.com/cosmelog/cosme-review-api/internal/domain/repository"
)

type ReviewRepositoryImpl struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Save(ctx context.Context, review *entity.Review) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (review_id, product_id, user_id, rating, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		review.ReviewID, review.ProductID, review.UserID, review.Rating, review.Comment, formatTime(now),
	)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return repository.ErrReferenceNotFound
		}
		return err
	}
	review.CreatedAt = now
	return nil
}

func (r *ReviewRepositoryImpl) FindByProductID(ctx context.Context, productID int64) ([]*entity.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT review_id, product_id, user_id, rating, comment, created_at
		 FROM reviews WHERE product_id = ? ORDER BY created_at DESC`, productID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepositoryImpl) FindByID(ctx context.Context, reviewID string) (*entity.Review, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT review_id, product_id, user_id, rating, comment, created_at
		 FROM reviews WHERE review_id = ?`, reviewID,
	)
	rv, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rv, err
}

func (r *ReviewRepositoryImpl) Erase(ctx context.Context, reviewID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE review_id = ?`, reviewID)
	return err
}

func scanReview(row rowScanner) (*entity.Review, error) {
	var rv entity.Review
	var createdAt string
	if err := row.Scan(&rv.ReviewID, &rv.ProductID, &rv.UserID, &rv.Rating, &rv.Comment, &createdAt); err != nil {
		return nil, err
	}
	rv.CreatedAt = parseTime(createdAt)
	return &rv, nil
}
