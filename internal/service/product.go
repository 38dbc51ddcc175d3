package service

import (
	"context"
	"fmt"

	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/k4rimDev/catalog-api/pkg/logger"
	"github.com/k4rimDev/catalog-api/pkg/slug"
)

type productService struct {
	logger       *logger.Logger
	productStore ProductStore
	slugConfig   slug.Config
}

var _ ProductService = (*productService)(nil)

// NewProduct returns new instance of product service.
func NewProduct(logger *logger.Logger, productStore ProductStore, slugConfig slug.Config) *productService {
	return &productService{
		logger:       logger,
		productStore: productStore,
		slugConfig:   slugConfig,
	}
}

func (p productService) CreateProduct(ctx context.Context, opts CreateProductOptions) (*model.Product, error) {
	logger := p.logger
	logger.Debug().Interface("opts", opts).Msg("got args")

	productSlug, err := slug.Generate(p.slugConfig, opts.Slug, opts.Title, func(candidate string) (bool, error) {
		return p.productStore.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		logger.Error().Err(err).Msg("generate product slug")
		return nil, fmt.Errorf("generate product slug: %w", err)
	}

	product, err := p.productStore.Create(ctx, &model.Product{
		Title:      opts.Title,
		Slug:       productSlug,
		Price:      opts.Price,
		CategoryID: opts.CategoryID,
		Text:       opts.Text,
	})
	if err != nil {
		if errs.IsExpected(err) {
			logger.Info().Err(err).Msg("product not created")
			return nil, err
		}

		logger.Error().Err(err).Msg("create product in store")
		return nil, fmt.Errorf("create product in store: %w", err)
	}

	logger.Info().Interface("product", product).Msg("product created")
	return product, nil
}

func (p productService) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	logger := p.logger
	logger.Debug().Int64("productID", productID).Msg("got args")

	product, err := p.productStore.Get(ctx, productID)
	if err != nil {
		logger.Error().Err(err).Msg("get product from store")
		return nil, fmt.Errorf("get product from store: %w", err)
	}
	if product == nil {
		logger.Info().Int64("productID", productID).Msg("product not found")
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (p productService) ListProducts(ctx context.Context, filter ListProductsFilter) ([]model.Product, error) {
	logger := p.logger
	logger.Debug().Interface("filter", filter).Msg("got args")

	products, err := p.productStore.GetAll(ctx, GetAllProductsFilter{
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
	})
	if err != nil {
		logger.Error().Err(err).Msg("get all products from store")
		return nil, fmt.Errorf("get all products from store: %w", err)
	}

	logger.Debug().Int("count", len(products)).Msg("got products")
	return products, nil
}

func (p productService) DeleteProduct(ctx context.Context, productID int64) error {
	logger := p.logger
	logger.Debug().Int64("productID", productID).Msg("got args")

	deleted, err := p.productStore.Delete(ctx, productID)
	if err != nil {
		logger.Error().Err(err).Msg("delete product from store")
		return fmt.Errorf("delete product from store: %w", err)
	}
	if !deleted {
		logger.Info().Int64("productID", productID).Msg("product not found")
		return ErrProductNotFound
	}

	logger.Info().Int64("productID", productID).Msg("product deleted")
	return nil
}
