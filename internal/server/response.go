package server

import (
	"encoding/json"
	"time"

	"github.com/k4rimDev/catalog-api/internal/model"
	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/valyala/fasthttp"
)

type categoryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func convertCategoryToResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Title:     category.Title,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

type productResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Price     float64   `json:"price"`
	Category  int64     `json:"category"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func convertProductToResponse(product model.Product) productResponse {
	return productResponse{
		ID:        product.ID,
		Title:     product.Title,
		Slug:      product.Slug,
		Price:     product.Price.InexactFloat64(),
		Category:  product.CategoryID,
		Text:      product.Text,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

type listProductsResponse struct {
	Count   int               `json:"count"`
	Results []productResponse `json:"results"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) respondJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.SetStatusCode(statusCode)

	if body == nil {
		return
	}

	ctx.SetContentType("application/json")

	err := json.NewEncoder(ctx).Encode(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("encode response body")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

// respondServiceError maps expected service errors to their status codes
// and hides everything else behind a generic 500.
func (s *Server) respondServiceError(ctx *fasthttp.RequestCtx, err error) {
	if fieldErrors, ok := err.(errs.FieldErrors); ok { //nolint:errorlint
		s.respondJSON(ctx, fasthttp.StatusBadRequest, fieldErrors)
		return
	}

	if errs.IsExpected(err) {
		statusCode := fasthttp.StatusBadRequest
		switch errs.KindOf(err) {
		case errs.KindNotFound:
			statusCode = fasthttp.StatusNotFound
		case errs.KindConflict:
			statusCode = fasthttp.StatusConflict
		}

		s.respondJSON(ctx, statusCode, detailResponse{Detail: err.Error()})
		return
	}

	s.logger.Error().Err(err).Msg("request failed")
	s.respondJSON(ctx, fasthttp.StatusInternalServerError, detailResponse{Detail: "internal server error"})
}
