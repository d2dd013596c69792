package validation_test

import (
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmelog/cosme-review-api/pkg/validation"
)

var initOnce sync.Once

func setup() {
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})
}

type sample struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Category string `json:"category" binding:"required,cosmecat"`
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	setup()

	err := binding.Validator.ValidateStruct(sample{
		Email:    "not-an-email",
		Password: "short",
		Category: "food",
	})
	require.Error(t, err)

	details := validation.ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "min length 8", details["password"])
	assert.Equal(t, "must be one of: skin_care, makeup, fragrance, hair_care, body_care", details["category"])
}

func TestToDetails_ValidStruct(t *testing.T) {
	setup()

	err := binding.Validator.ValidateStruct(sample{
		Email:    "alice@example.com",
		Password: "password123",
		Category: "skin_care",
	})
	assert.NoError(t, err)
}

func TestToDetails_NonValidationError(t *testing.T) {
	details := validation.ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}

func TestToDetails_Nil(t *testing.T) {
	assert.Nil(t, validation.ToDetails(nil))
}
