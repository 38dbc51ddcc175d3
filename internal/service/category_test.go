package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/k4rimDev/catalog-api/internal/service"
	"github.com/k4rimDev/catalog-api/internal/service/mocks"
	"github.com/k4rimDev/catalog-api/pkg/logger"
	"github.com/k4rimDev/catalog-api/pkg/slug"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{LogLevel: "debug"})
}

func testSlugConfig() slug.Config {
	return slug.Config{
		SourceField:   "title",
		SymbolMapping: slug.DefaultSymbolMapping,
	}
}

func TestCategory_CreateCategory(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	testCases := []struct {
		name        string
		mock        func(categoryStore *mocks.CategoryStore)
		args        service.CreateCategoryOptions
		expected    *model.Category
		expectedErr string
	}{
		{
			name: "positive: category created with derived slug",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("SlugExists", ctx, "qara-cay", int64(0)).Return(false, nil)
				categoryStore.On("Create", ctx, &model.Category{
					Title: "Qara çay",
					Slug:  "qara-cay",
				}).Return(&model.Category{
					ID:    1,
					Title: "Qara çay",
					Slug:  "qara-cay",
				}, nil)
			},
			args: service.CreateCategoryOptions{
				Title: "Qara çay",
			},
			expected: &model.Category{
				ID:    1,
				Title: "Qara çay",
				Slug:  "qara-cay",
			},
		},
		{
			name: "positive: occupied slug resolved with numeric suffix",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("SlugExists", ctx, "shoes", int64(0)).Return(true, nil)
				categoryStore.On("SlugExists", ctx, "shoes-1", int64(0)).Return(false, nil)
				categoryStore.On("Create", ctx, &model.Category{
					Title: "Shoes",
					Slug:  "shoes-1",
				}).Return(&model.Category{
					ID:    2,
					Title: "Shoes",
					Slug:  "shoes-1",
				}, nil)
			},
			args: service.CreateCategoryOptions{
				Title: "Shoes",
			},
			expected: &model.Category{
				ID:    2,
				Title: "Shoes",
				Slug:  "shoes-1",
			},
		},
		{
			name: "negative: write-time slug race surfaces as conflict",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("SlugExists", ctx, "shoes", int64(0)).Return(false, nil)
				categoryStore.On("Create", ctx, &model.Category{
					Title: "Shoes",
					Slug:  "shoes",
				}).Return(nil, service.ErrSlugAlreadyTaken)
			},
			args: service.CreateCategoryOptions{
				Title: "Shoes",
			},
			expectedErr: service.ErrSlugAlreadyTaken.Error(),
		},
		{
			name: "negative: got an error while probing slug existence",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("SlugExists", ctx, "shoes", int64(0)).
					Return(false, fmt.Errorf("some error"))
			},
			args: service.CreateCategoryOptions{
				Title: "Shoes",
			},
			expectedErr: `generate category slug: probe slug "shoes": some error`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			categoryStoreMock := &mocks.CategoryStore{}
			tc.mock(categoryStoreMock)

			categoryService := service.NewCategory(newTestLogger(), categoryStoreMock, testSlugConfig())

			got, err := categoryService.CreateCategory(ctx, tc.args)
			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCategory_GetCategory(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	testCases := []struct {
		name        string
		mock        func(categoryStore *mocks.CategoryStore)
		args        int64
		expected    *model.Category
		expectedErr error
	}{
		{
			name: "positive: category received",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Get", ctx, int64(1)).Return(&model.Category{
					ID:    1,
					Title: "Shoes",
					Slug:  "shoes",
				}, nil)
			},
			args: 1,
			expected: &model.Category{
				ID:    1,
				Title: "Shoes",
				Slug:  "shoes",
			},
		},
		{
			name: "negative: category not found",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Get", ctx, int64(42)).Return(nil, nil)
			},
			args:        42,
			expectedErr: service.ErrCategoryNotFound,
		},
		{
			name: "negative: got an error while get category",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Get", ctx, int64(1)).Return(nil, fmt.Errorf("some error"))
			},
			args:        1,
			expectedErr: fmt.Errorf("get category from store: %w", fmt.Errorf("some error")),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			categoryStoreMock := &mocks.CategoryStore{}
			tc.mock(categoryStoreMock)

			categoryService := service.NewCategory(newTestLogger(), categoryStoreMock, testSlugConfig())

			got, err := categoryService.GetCategory(ctx, tc.args)
			if tc.expectedErr != nil {
				assert.Equal(t, tc.expectedErr, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCategory_DeleteCategory(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	testCases := []struct {
		name        string
		mock        func(categoryStore *mocks.CategoryStore)
		args        int64
		expectedErr error
	}{
		{
			name: "positive: category deleted",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Delete", ctx, int64(1)).Return(true, nil)
			},
			args: 1,
		},
		{
			name: "negative: category not found",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Delete", ctx, int64(42)).Return(false, nil)
			},
			args:        42,
			expectedErr: service.ErrCategoryNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			categoryStoreMock := &mocks.CategoryStore{}
			tc.mock(categoryStoreMock)

			categoryService := service.NewCategory(newTestLogger(), categoryStoreMock, testSlugConfig())

			got := categoryService.DeleteCategory(ctx, tc.args)
			assert.Equal(t, tc.expectedErr, got)
		})
	}
}
