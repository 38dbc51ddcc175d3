package server

import (
	"strings"

	"github.com/k4rimDev/catalog-api/internal/service"
	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
)

type createProductRequest struct {
	Title    string           `json:"title"`
	Slug     string           `json:"slug"`
	Text     string           `json:"text"`
	Category *int64           `json:"category"`
	Price    *decimal.Decimal `json:"price"`
}

func (r createProductRequest) validate() errs.FieldErrors {
	fieldErrors := errs.FieldErrors{}

	if strings.TrimSpace(r.Title) == "" {
		fieldErrors.Add("title", "this field is required")
	}
	if strings.TrimSpace(r.Text) == "" {
		fieldErrors.Add("text", "this field is required")
	}
	if r.Category == nil {
		fieldErrors.Add("category", "this field is required")
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}

func (s *Server) handleCreateProduct(ctx *fasthttp.RequestCtx) {
	var request createProductRequest
	if err := decodeBody(ctx.PostBody(), &request); err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	if fieldErrors := request.validate(); fieldErrors != nil {
		s.respondJSON(ctx, fasthttp.StatusBadRequest, fieldErrors)
		return
	}

	price := decimal.Zero
	if request.Price != nil {
		price = *request.Price
	}

	product, err := s.services.Product.CreateProduct(ctx, service.CreateProductOptions{
		Title:      request.Title,
		Slug:       request.Slug,
		Price:      price,
		CategoryID: *request.Category,
		Text:       request.Text,
	})
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	s.respondJSON(ctx, fasthttp.StatusCreated, convertProductToResponse(*product))
}

func (s *Server) handleListProducts(ctx *fasthttp.RequestCtx) {
	filter := service.ListProductsFilter{}
	fieldErrors := errs.FieldErrors{}

	if raw := ctx.QueryArgs().Peek("min_price"); len(raw) > 0 {
		value, err := decimal.NewFromString(string(raw))
		if err != nil {
			fieldErrors.Add("min_price", "a valid number is required")
		} else {
			filter.MinPrice = &value
		}
	}
	if raw := ctx.QueryArgs().Peek("max_price"); len(raw) > 0 {
		value, err := decimal.NewFromString(string(raw))
		if err != nil {
			fieldErrors.Add("max_price", "a valid number is required")
		} else {
			filter.MaxPrice = &value
		}
	}

	if len(fieldErrors) > 0 {
		s.respondJSON(ctx, fasthttp.StatusBadRequest, fieldErrors)
		return
	}

	products, err := s.services.Product.ListProducts(ctx, filter)
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	results := make([]productResponse, 0, len(products))
	for _, product := range products {
		results = append(results, convertProductToResponse(product))
	}

	s.respondJSON(ctx, fasthttp.StatusOK, listProductsResponse{
		Count:   len(results),
		Results: results,
	})
}

func (s *Server) handleGetProduct(ctx *fasthttp.RequestCtx) {
	productID, ok := parseID(ctx)
	if !ok {
		s.respondServiceError(ctx, service.ErrProductNotFound)
		return
	}

	product, err := s.services.Product.GetProduct(ctx, productID)
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	s.respondJSON(ctx, fasthttp.StatusOK, convertProductToResponse(*product))
}

func (s *Server) handleDeleteProduct(ctx *fasthttp.RequestCtx) {
	productID, ok := parseID(ctx)
	if !ok {
		s.respondServiceError(ctx, service.ErrProductNotFound)
		return
	}

	err := s.services.Product.DeleteProduct(ctx, productID)
	if err != nil {
		s.respondServiceError(ctx, err)
		return
	}

	s.respondJSON(ctx, fasthttp.StatusNoContent, nil)
}
