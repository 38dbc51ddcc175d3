package store_test

import (
	"context"
	"testing"

	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/k4rimDev/catalog-api/internal/service"
	"github.com/k4rimDev/catalog-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStore_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	testDB := createTestDB(t, "product_store_create")
	productStore := store.NewProduct(testDB)

	created, err := productStore.Create(ctx, &model.Product{
		Title:      "Running Shoes",
		Slug:       "running-shoes",
		Price:      decimal.NewFromFloat(49.99),
		CategoryID: 3,
		Text:       "Light and fast.",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "running-shoes", created.Slug)
	assert.True(t, created.Price.Equal(decimal.NewFromFloat(49.99)), "price = %s", created.Price)
	assert.EqualValues(t, 3, created.CategoryID)
	assert.False(t, created.CreatedAt.IsZero())

	// The unique constraint is the last line of defense against slug races.
	_, err = productStore.Create(ctx, &model.Product{
		Title: "Other Shoes",
		Slug:  "running-shoes",
		Price: decimal.NewFromInt(10),
		Text:  "Different product, same slug.",
	})
	assert.Equal(t, service.ErrSlugAlreadyTaken, err)
}

func TestProductStore_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	testDB := createTestDB(t, "product_store_get")
	productStore := store.NewProduct(testDB)

	created, err := productStore.Create(ctx, &model.Product{
		Title:      "Shoes",
		Slug:       "shoes",
		Price:      decimal.NewFromInt(25),
		CategoryID: 1,
		Text:       "About shoes.",
	})
	require.NoError(t, err)

	got, err := productStore.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got, err = productStore.Get(ctx, created.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductStore_GetAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	testDB := createTestDB(t, "product_store_get_all")
	productStore := store.NewProduct(testDB)

	prices := map[string]int64{
		"cheap":  5,
		"low":    10,
		"middle": 25,
		"high":   50,
		"luxury": 120,
	}
	for _, slug := range []string{"cheap", "low", "middle", "high", "luxury"} {
		_, err := productStore.Create(ctx, &model.Product{
			Title: slug,
			Slug:  slug,
			Price: decimal.NewFromInt(prices[slug]),
			Text:  "test product",
		})
		require.NoError(t, err)
	}

	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(50)

	testCases := []struct {
		desc     string
		filter   service.GetAllProductsFilter
		expected []string
	}{
		{
			desc:     "positive: all products received without bounds",
			filter:   service.GetAllProductsFilter{},
			expected: []string{"cheap", "low", "middle", "high", "luxury"},
		},
		{
			desc: "positive: bounds are inclusive on both ends",
			filter: service.GetAllProductsFilter{
				MinPrice: &minPrice,
				MaxPrice: &maxPrice,
			},
			expected: []string{"low", "middle", "high"},
		},
		{
			desc: "positive: lower bound applied independently",
			filter: service.GetAllProductsFilter{
				MinPrice: &maxPrice,
			},
			expected: []string{"high", "luxury"},
		},
		{
			desc: "positive: upper bound applied independently",
			filter: service.GetAllProductsFilter{
				MaxPrice: &minPrice,
			},
			expected: []string{"cheap", "low"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			got, err := productStore.GetAll(ctx, tc.filter)
			require.NoError(t, err)

			slugs := make([]string, 0, len(got))
			for _, p := range got {
				slugs = append(slugs, p.Slug)
			}
			assert.Equal(t, tc.expected, slugs)
		})
	}
}

func TestProductStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	testDB := createTestDB(t, "product_store_delete")
	productStore := store.NewProduct(testDB)

	created, err := productStore.Create(ctx, &model.Product{
		Title: "Shoes",
		Slug:  "shoes",
		Price: decimal.NewFromInt(25),
		Text:  "About shoes.",
	})
	require.NoError(t, err)

	deleted, err := productStore.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = productStore.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProductStore_SlugExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	testDB := createTestDB(t, "product_store_slug_exists")
	productStore := store.NewProduct(testDB)

	created, err := productStore.Create(ctx, &model.Product{
		Title: "Shoes",
		Slug:  "shoes",
		Price: decimal.NewFromInt(25),
		Text:  "About shoes.",
	})
	require.NoError(t, err)

	got, err := productStore.SlugExists(ctx, "shoes", 0)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = productStore.SlugExists(ctx, "shoes", created.ID)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = productStore.SlugExists(ctx, "boots", 0)
	require.NoError(t, err)
	assert.False(t, got)
}
