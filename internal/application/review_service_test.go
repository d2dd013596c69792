package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cosmelog/cosme-review-api/internal/application"
	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
	repo "github.com/cosmelog/cosme-review-api/internal/domain/repository"
	"github.com/cosmelog/cosme-review-api/pkg/apperrors"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Save(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByProductID(ctx context.Context, productID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, reviewID string) (*entity.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Erase(ctx context.Context, reviewID string) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func TestCreateReview_BadRatingSkipsPersistence(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := application.NewReviewService(mockRepo, nil)

	rv, err := svc.Create(context.Background(), 1, 2, 8, "too good")
	assert.Nil(t, rv)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateReview_MissingReferenceBecomesNotFound(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := application.NewReviewService(mockRepo, nil)

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(repo.ErrReferenceNotFound)

	rv, err := svc.Create(context.Background(), 9999, 2, 5, "ghost product")
	assert.Nil(t, rv)

	var nerr *apperrors.NotFoundError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "Product or User not found", nerr.Error())
}

func TestCreateReview_Success(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := application.NewReviewService(mockRepo, nil)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)

	rv, err := svc.Create(context.Background(), 1, 2, 5, "nice scent")
	require.NoError(t, err)
	assert.NotEmpty(t, rv.ReviewID)
	assert.Equal(t, int64(1), rv.ProductID)
	assert.Equal(t, int64(2), rv.UserID)
	mockRepo.AssertExpectations(t)
}

func TestListReviews_InvalidProductID(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := application.NewReviewService(mockRepo, nil)

	_, err := svc.ListByProduct(context.Background(), 0)
	var verr *apperrors.ValidationError
	assert.True(t, errors.As(err, &verr))
	mockRepo.AssertNotCalled(t, "FindByProductID", mock.Anything, mock.Anything)
}

func TestEraseReview_AbsentBecomesNotFound(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := application.NewReviewService(mockRepo, nil)

	mockRepo.On("FindByID", mock.Anything, "11111111-1111-1111-1111-111111111111").Return(nil, nil)

	err := svc.Erase(context.Background(), "11111111-1111-1111-1111-111111111111", 2)
	var nerr *apperrors.NotFoundError
	require.True(t, errors.As(err, &nerr))
	mockRepo.AssertNotCalled(t, "Erase", mock.Anything, mock.Anything)
}

func TestEraseReview_NonOwnerForbidden(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := application.NewReviewService(mockRepo, nil)

	stored := &entity.Review{ReviewID: "11111111-1111-1111-1111-111111111111", ProductID: 1, UserID: 2, Rating: 5}
	mockRepo.On("FindByID", mock.Anything, stored.ReviewID).Return(stored, nil)

	err := svc.Erase(context.Background(), stored.ReviewID, 3)
	var ferr *apperrors.ForbiddenError
	require.True(t, errors.As(err, &ferr))
	mockRepo.AssertNotCalled(t, "Erase", mock.Anything, mock.Anything)
}

func TestEraseReview_OwnerSucceeds(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := application.NewReviewService(mockRepo, nil)

	stored := &entity.Review{ReviewID: "11111111-1111-1111-1111-111111111111", ProductID: 1, UserID: 2, Rating: 5}
	mockRepo.On("FindByID", mock.Anything, stored.ReviewID).Return(stored, nil)
	mockRepo.On("Erase", mock.Anything, stored.ReviewID).Return(nil)

	err := svc.Erase(context.Background(), stored.ReviewID, 2)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
