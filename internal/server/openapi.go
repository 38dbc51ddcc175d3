package server

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
)

type routeParam struct {
	name        string
	in          string
	schemaType  string
	description string
	required    bool
}

type routeInfo struct {
	method  string
	path    string
	tag     string
	summary string
	params  []routeParam

	bodyFields     map[string]string
	requiredFields []string

	successStatus      int
	successDescription string
}

// routeTable drives both the OpenAPI document and, indirectly, readers of
// the API. Paths here must stay in sync with registerRoutes.
var routeTable = []routeInfo{
	{
		method:  fasthttp.MethodGet,
		path:    "/product/list-filter",
		tag:     "Product",
		summary: "List all or filtered products",
		params: []routeParam{
			{name: "min_price", in: "query", schemaType: "number", description: "Minimum price"},
			{name: "max_price", in: "query", schemaType: "number", description: "Maximum price"},
		},
		successStatus:      fasthttp.StatusOK,
		successDescription: "Product count and results",
	},
	{
		method:             fasthttp.MethodGet,
		path:               "/product/get-categories",
		tag:                "Category",
		summary:            "List all categories",
		successStatus:      fasthttp.StatusOK,
		successDescription: "All categories",
	},
	{
		method:  fasthttp.MethodGet,
		path:    "/product/product/{id}",
		tag:     "Product",
		summary: "Get product with id",
		params: []routeParam{
			{name: "id", in: "path", schemaType: "integer", description: "Product id", required: true},
		},
		successStatus:      fasthttp.StatusOK,
		successDescription: "The product",
	},
	{
		method:  fasthttp.MethodGet,
		path:    "/product/category/{id}",
		tag:     "Category",
		summary: "Get category with id",
		params: []routeParam{
			{name: "id", in: "path", schemaType: "integer", description: "Category id", required: true},
		},
		successStatus:      fasthttp.StatusOK,
		successDescription: "The category",
	},
	{
		method:  fasthttp.MethodPost,
		path:    "/product/create-category",
		tag:     "Category",
		summary: "Create a category",
		bodyFields: map[string]string{
			"title": "string",
			"slug":  "string",
		},
		requiredFields:     []string{"title"},
		successStatus:      fasthttp.StatusCreated,
		successDescription: "The created category",
	},
	{
		method:  fasthttp.MethodPost,
		path:    "/product/create-product",
		tag:     "Product",
		summary: "Create a product",
		bodyFields: map[string]string{
			"title":    "string",
			"slug":     "string",
			"text":     "string",
			"category": "integer",
			"price":    "number",
		},
		requiredFields:     []string{"title", "text", "category"},
		successStatus:      fasthttp.StatusCreated,
		successDescription: "The created product",
	},
	{
		method:  fasthttp.MethodDelete,
		path:    "/product/remove-product/{id}",
		tag:     "Product",
		summary: "Delete product with id",
		params: []routeParam{
			{name: "id", in: "path", schemaType: "integer", description: "Product id", required: true},
		},
		successStatus:      fasthttp.StatusNoContent,
		successDescription: "Product deleted",
	},
	{
		method:  fasthttp.MethodDelete,
		path:    "/product/remove-category/{id}",
		tag:     "Category",
		summary: "Delete category with id",
		params: []routeParam{
			{name: "id", in: "path", schemaType: "integer", description: "Category id", required: true},
		},
		successStatus:      fasthttp.StatusNoContent,
		successDescription: "Category deleted",
	},
}

// buildOpenAPIDocument renders the route table as an OpenAPI 3 document.
func buildOpenAPIDocument(routes []routeInfo) ([]byte, error) {
	paths := make(map[string]map[string]any)

	for _, route := range routes {
		operation := map[string]any{
			"tags":    []string{route.tag},
			"summary": route.summary,
			"responses": map[string]any{
				strconv.Itoa(route.successStatus): map[string]any{
					"description": route.successDescription,
				},
			},
		}

		if len(route.params) > 0 {
			params := make([]map[string]any, 0, len(route.params))
			for _, p := range route.params {
				params = append(params, map[string]any{
					"name":        p.name,
					"in":          p.in,
					"description": p.description,
					"required":    p.required,
					"schema":      map[string]any{"type": p.schemaType},
				})
			}
			operation["parameters"] = params
		}

		if len(route.bodyFields) > 0 {
			properties := make(map[string]any, len(route.bodyFields))
			for field, schemaType := range route.bodyFields {
				properties[field] = map[string]any{"type": schemaType}
			}

			operation["requestBody"] = map[string]any{
				"required": true,
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"type":       "object",
							"properties": properties,
							"required":   route.requiredFields,
						},
					},
				},
			}
		}

		if paths[route.path] == nil {
			paths[route.path] = make(map[string]any)
		}
		paths[route.path][strings.ToLower(route.method)] = operation
	}

	document := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "Catalog APIs",
			"version":     "v0.0.1",
			"description": "Product catalog service",
		},
		"paths": paths,
	}

	return json.MarshalIndent(document, "", "  ")
}

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Catalog APIs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({url: "/swagger.json", dom_id: "#swagger-ui"});
    };
  </script>
</body>
</html>
`

func (s *Server) handleOpenAPI(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetBody(s.openapi)
}

func (s *Server) handleSwaggerUI(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetBody(s.swagger)
}
