package service

import (
	"context"

	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/shopspring/decimal"
)

// Services represents all services.
type Services struct {
	Category CategoryService
	Product  ProductService
}

// CategoryService provides business logic for work with product categories.
type CategoryService interface {
	// CreateCategory derives a slug for the category and persists it.
	CreateCategory(ctx context.Context, opts CreateCategoryOptions) (*model.Category, error)
	// GetCategory returns a category by its ID.
	GetCategory(ctx context.Context, categoryID int64) (*model.Category, error)
	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]model.Category, error)
	// DeleteCategory deletes a category by its ID.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CreateCategoryOptions represents input for creating a category. Slug is
// optional, it is derived from the title when empty.
type CreateCategoryOptions struct {
	Title string
	Slug  string
}

// ProductService provides business logic for work with products.
type ProductService interface {
	// CreateProduct derives a slug for the product and persists it.
	CreateProduct(ctx context.Context, opts CreateProductOptions) (*model.Product, error)
	// GetProduct returns a product by its ID.
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
	// ListProducts returns all products matching the price bounds.
	ListProducts(ctx context.Context, filter ListProductsFilter) ([]model.Product, error)
	// DeleteProduct deletes a product by its ID.
	DeleteProduct(ctx context.Context, productID int64) error
}

// CreateProductOptions represents input for creating a product. Slug is
// optional, it is derived from the title when empty. CategoryID is stored
// as-is, without checking that such a category exists.
type CreateProductOptions struct {
	Title      string
	Slug       string
	Price      decimal.Decimal
	CategoryID int64
	Text       string
}

// ListProductsFilter represents price bounds for ListProducts. Both bounds
// are inclusive and independently optional.
type ListProductsFilter struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

var (
	// ErrCategoryNotFound happens when a category does not exist in store.
	ErrCategoryNotFound = errs.NewNotFound("category not found")
	// ErrProductNotFound happens when a product does not exist in store.
	ErrProductNotFound = errs.NewNotFound("product not found")
	// ErrSlugAlreadyTaken happens when an insert loses a race for a slug
	// value and the unique constraint rejects it.
	ErrSlugAlreadyTaken = errs.NewConflict("slug already in use")
)
