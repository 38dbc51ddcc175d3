package service

import (
	"context"

	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/shopspring/decimal"
)

// Stores represents all stores.
type Stores struct {
	Category CategoryStore
	Product  ProductStore
}

// CategoryStore provides functionality for work with categories store.
//
//go:generate mockery --dir . --name CategoryStore --output ./mocks
type CategoryStore interface {
	// Create creates a new category in store and returns the stored record.
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	// Get returns a category from store by ID, nil when absent.
	Get(ctx context.Context, categoryID int64) (*model.Category, error)
	// GetAll returns all categories from store.
	GetAll(ctx context.Context) ([]model.Category, error)
	// Delete deletes a category from store, reporting whether a row was removed.
	Delete(ctx context.Context, categoryID int64) (bool, error)
	// SlugExists reports whether another category already holds the slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// ProductStore provides functionality for work with products store.
//
//go:generate mockery --dir . --name ProductStore --output ./mocks
type ProductStore interface {
	// Create creates a new product in store and returns the stored record.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	// Get returns a product from store by ID, nil when absent.
	Get(ctx context.Context, productID int64) (*model.Product, error)
	// GetAll returns products from store matching the filter.
	GetAll(ctx context.Context, filter GetAllProductsFilter) ([]model.Product, error)
	// Delete deletes a product from store, reporting whether a row was removed.
	Delete(ctx context.Context, productID int64) (bool, error)
	// SlugExists reports whether another product already holds the slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// GetAllProductsFilter represents filters for the GetAll method. Price
// bounds are inclusive.
type GetAllProductsFilter struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}
