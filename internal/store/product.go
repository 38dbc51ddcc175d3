package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/k4rimDev/catalog-api/internal/service"
	"github.com/k4rimDev/catalog-api/pkg/database"
)

type productStore struct {
	*database.PostgreSQL
}

var _ service.ProductStore = (*productStore)(nil)

// NewProduct returns a new instance of the product store.
func NewProduct(db *database.PostgreSQL) *productStore {
	return &productStore{
		db,
	}
}

func (p *productStore) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	var created model.Product

	err := p.DB.GetContext(
		ctx,
		&created,
		"INSERT INTO products (title, slug, price, category, text, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id, title, slug, price, category, text, created_at, updated_at;",
		product.Title, product.Slug, product.Price, product.CategoryID, product.Text,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, service.ErrSlugAlreadyTaken
		}

		return nil, err
	}

	return &created, nil
}

func (p *productStore) Get(ctx context.Context, productID int64) (*model.Product, error) {
	var product model.Product

	err := p.DB.GetContext(
		ctx,
		&product,
		"SELECT id, title, slug, price, category, text, created_at, updated_at FROM products WHERE id = $1;",
		productID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &product, nil
}

func (p *productStore) GetAll(ctx context.Context, filter service.GetAllProductsFilter) ([]model.Product, error) {
	stmt := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "title", "slug", "price", "category", "text", "created_at", "updated_at").
		From("products").
		OrderBy("id ASC")

	if filter.MinPrice != nil {
		stmt = stmt.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		stmt = stmt.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get all products query: %w", err)
	}

	var products []model.Product
	err = p.DB.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (p *productStore) Delete(ctx context.Context, productID int64) (bool, error) {
	result, err := p.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1;", productID)
	if err != nil {
		return false, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (p *productStore) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool

	err := p.DB.GetContext(
		ctx,
		&exists,
		"SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id <> $2);",
		slug, excludeID,
	)
	if err != nil {
		return false, err
	}

	return exists, nil
}
