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

type categoryStore struct {
	*database.PostgreSQL
}

var _ service.CategoryStore = (*categoryStore)(nil)

// NewCategory returns a new instance of the category store.
func NewCategory(db *database.PostgreSQL) *categoryStore {
	return &categoryStore{
		db,
	}
}

func (c *categoryStore) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	var created model.Category

	err := c.DB.GetContext(
		ctx,
		&created,
		"INSERT INTO categories (title, slug, created_at, updated_at) VALUES ($1, $2, NOW(), NOW()) RETURNING id, title, slug, created_at, updated_at;",
		category.Title, category.Slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, service.ErrSlugAlreadyTaken
		}

		return nil, err
	}

	return &created, nil
}

func (c *categoryStore) Get(ctx context.Context, categoryID int64) (*model.Category, error) {
	var category model.Category

	err := c.DB.GetContext(
		ctx,
		&category,
		"SELECT id, title, slug, created_at, updated_at FROM categories WHERE id = $1;",
		categoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &category, nil
}

func (c *categoryStore) GetAll(ctx context.Context) ([]model.Category, error) {
	stmt := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "title", "slug", "created_at", "updated_at").
		From("categories").
		OrderBy("id ASC")

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get all categories query: %w", err)
	}

	var categories []model.Category
	err = c.DB.SelectContext(ctx, &categories, query, args...)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *categoryStore) Delete(ctx context.Context, categoryID int64) (bool, error) {
	result, err := c.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1;", categoryID)
	if err != nil {
		return false, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (c *categoryStore) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool

	err := c.DB.GetContext(
		ctx,
		&exists,
		"SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id <> $2);",
		slug, excludeID,
	)
	if err != nil {
		return false, err
	}

	return exists, nil
}
