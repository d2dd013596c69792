package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
)

func TestValidCategory(t *testing.T) {
	valid := []string{"skin_care", "makeup", "fragrance", "hair_care", "body_care"}
	for _, c := range valid {
		assert.True(t, entity.ValidCategory(c), c)
	}

	invalid := []string{"", "skincare", "SKIN_CARE", "food", "skin_care "}
	for _, c := range invalid {
		assert.False(t, entity.ValidCategory(c), c)
	}
}

func TestNewProduct_RejectsUnknownCategory(t *testing.T) {
	p, err := entity.NewProduct("Cream", "Acme", "food", []string{"water"})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, entity.ErrUndefinedCategory)
}

func TestNewProduct_Valid(t *testing.T) {
	p, err := entity.NewProduct("Cream", "Acme", "skin_care", []string{"water", "glycerin"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.ID)
	assert.Equal(t, entity.CategorySkinCare, p.Category)
	assert.Equal(t, []string{"water", "glycerin"}, p.Ingredients)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewProduct_NilIngredientsBecomeEmpty(t *testing.T) {
	p, err := entity.NewProduct("Cream", "Acme", "skin_care", nil)
	require.NoError(t, err)
	assert.NotNil(t, p.Ingredients)
	assert.Empty(t, p.Ingredients)
}
