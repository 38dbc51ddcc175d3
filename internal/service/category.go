package service

import (
	"context"
	"fmt"

	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/k4rimDev/catalog-api/pkg/logger"
	"github.com/k4rimDev/catalog-api/pkg/slug"
)

type categoryService struct {
	logger        *logger.Logger
	categoryStore CategoryStore
	slugConfig    slug.Config
}

var _ CategoryService = (*categoryService)(nil)

// NewCategory returns new instance of category service.
func NewCategory(logger *logger.Logger, categoryStore CategoryStore, slugConfig slug.Config) *categoryService {
	return &categoryService{
		logger:        logger,
		categoryStore: categoryStore,
		slugConfig:    slugConfig,
	}
}

func (c categoryService) CreateCategory(ctx context.Context, opts CreateCategoryOptions) (*model.Category, error) {
	logger := c.logger
	logger.Debug().Interface("opts", opts).Msg("got args")

	categorySlug, err := slug.Generate(c.slugConfig, opts.Slug, opts.Title, func(candidate string) (bool, error) {
		return c.categoryStore.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		logger.Error().Err(err).Msg("generate category slug")
		return nil, fmt.Errorf("generate category slug: %w", err)
	}

	category, err := c.categoryStore.Create(ctx, &model.Category{
		Title: opts.Title,
		Slug:  categorySlug,
	})
	if err != nil {
		if errs.IsExpected(err) {
			logger.Info().Err(err).Msg("category not created")
			return nil, err
		}

		logger.Error().Err(err).Msg("create category in store")
		return nil, fmt.Errorf("create category in store: %w", err)
	}

	logger.Info().Interface("category", category).Msg("category created")
	return category, nil
}

func (c categoryService) GetCategory(ctx context.Context, categoryID int64) (*model.Category, error) {
	logger := c.logger
	logger.Debug().Int64("categoryID", categoryID).Msg("got args")

	category, err := c.categoryStore.Get(ctx, categoryID)
	if err != nil {
		logger.Error().Err(err).Msg("get category from store")
		return nil, fmt.Errorf("get category from store: %w", err)
	}
	if category == nil {
		logger.Info().Int64("categoryID", categoryID).Msg("category not found")
		return nil, ErrCategoryNotFound
	}

	return category, nil
}

func (c categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := c.categoryStore.GetAll(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("get all categories from store")
		return nil, fmt.Errorf("get all categories from store: %w", err)
	}

	c.logger.Debug().Int("count", len(categories)).Msg("got categories")
	return categories, nil
}

func (c categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	logger := c.logger
	logger.Debug().Int64("categoryID", categoryID).Msg("got args")

	deleted, err := c.categoryStore.Delete(ctx, categoryID)
	if err != nil {
		logger.Error().Err(err).Msg("delete category from store")
		return fmt.Errorf("delete category from store: %w", err)
	}
	if !deleted {
		logger.Info().Int64("categoryID", categoryID).Msg("category not found")
		return ErrCategoryNotFound
	}

	logger.Info().Int64("categoryID", categoryID).Msg("category deleted")
	return nil
}
