package server

import (
	"strings"

	"github.com/k4rimDev/catalog-api/internal/service"
	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/valyala/fasthttp"
)

type createCategoryRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

func (r createCategoryRequest) validate() errs.FieldErrors {
	fieldErrors := errs.FieldErrors{}

	if strings.TrimSpace(r.Title) == "" {
		fieldErrors.Add("title", "this field is required")
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}

func (s *Server) handleCreateCategory(ctx *fasthttp.RequestCtx) {
	var request createCategoryRequest
	if err := decodeBody(ctx.PostBody(), &request); err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	if fieldErrors := request.validate(); fieldErrors != nil {
		s.respondJSON(ctx, fasthttp.StatusBadRequest, fieldErrors)
		return
	}

	category, err := s.services.Category.CreateCategory(ctx, service.CreateCategoryOptions{
		Title: request.Title,
		Slug:  request.Slug,
	})
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	s.respondJSON(ctx, fasthttp.StatusCreated, convertCategoryToResponse(*category))
}

func (s *Server) handleListCategories(ctx *fasthttp.RequestCtx) {
	categories, err := s.services.Category.ListCategories(ctx)
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	results := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		results = append(results, convertCategoryToResponse(category))
	}

	s.respondJSON(ctx, fasthttp.StatusOK, results)
}

func (s *Server) handleGetCategory(ctx *fasthttp.RequestCtx) {
	categoryID, ok := parseID(ctx)
	if !ok {
		s.respondServiceError(ctx, service.ErrCategoryNotFound)
		return
	}

	category, err := s.services.Category.GetCategory(ctx, categoryID)
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	s.respondJSON(ctx, fasthttp.StatusOK, convertCategoryToResponse(*category))
}

func (s *Server) handleDeleteCategory(ctx *fasthttp.RequestCtx) {
	categoryID, ok := parseID(ctx)
	if !ok {
		s.respondServiceError(ctx, service.ErrCategoryNotFound)
		return
	}

	err := s.services.Category.DeleteCategory(ctx, categoryID)
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	s.respondJSON(ctx, fasthttp.StatusNoContent, nil)
}
