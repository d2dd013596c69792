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
	"github.com/cosmelog/cosme-review-api/pkg/apperrors"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

func newProductService(r *MockProductRepository) *application.ProductService {
	return application.NewProductService(r, nil, nil, nil, "", nil, "")
}

func TestCreateProduct_UnknownCategorySkipsPersistence(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := newProductService(mockRepo)

	p, err := svc.Create(context.Background(), "Cream", "Acme", "food", []string{"water"})
	assert.Nil(t, p)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateProduct_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := newProductService(mockRepo)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = 7
		}).
		Return(nil)

	p, err := svc.Create(context.Background(), "Cream", "Acme", "skin_care", []string{"water", "glycerin"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, []string{"water", "glycerin"}, p.Ingredients)
	mockRepo.AssertExpectations(t)
}

func TestGetProduct_AbsentBecomesNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := newProductService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	p, err := svc.Get(context.Background(), 99)
	assert.Nil(t, p)

	var nerr *apperrors.NotFoundError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "Product not found", nerr.Error())
}

func TestListProducts_FallsBackToRepository(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := newProductService(mockRepo)

	expected := []*entity.Product{{ID: 1, Name: "Cream", Category: entity.CategorySkinCare}}
	mockRepo.On("FindAll", mock.Anything).Return(expected, nil)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestSearch_WithoutElasticsearchReturnsEmpty(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := newProductService(mockRepo)

	hits, err := svc.Search(context.Background(), "cream", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
