package entity

import (
	"errors"
	"fmt"
	"time"
)

// Category is the fixed product category enum.
type Category string

const (
	CategorySkinCare  Category = "skin_care"
	CategoryMakeup    Category = "makeup"
	CategoryFragrance Category = "fragrance"
	CategoryHairCare  Category = "hair_care"
	CategoryBodyCare  Category = "body_care"
)

// ErrUndefinedCategory is returned when a category string is outside the enum.
var ErrUndefinedCategory = errors.New("undefined product category")

// ValidCategory reports whether s is one of the five known categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategorySkinCare, CategoryMakeup, CategoryFragrance, CategoryHairCare, CategoryBodyCare:
		return true
	}
	return false
}

// Product is a catalog entry. Ingredients keep their submitted order.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	Category     Category  `json:"category"`
	Ingredients  []string  `json:"ingredients"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewProduct validates the category and builds an unsaved product.
// CreatedAt is assigned here; the ID is assigned by the repository on save.
func NewProduct(name, manufacturer, category string, ingredients []string) (*Product, error) {
	if !ValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedCategory, category)
	}
	if ingredients == nil {
		ingredients = []string{}
	}
	return &Product{
		Name:         name,
		Manufacturer: manufacturer,
		Category:     Category(category),
		Ingredients:  ingredients,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
