package server

import (
	"fmt"

	"github.com/fasthttp/router"
	"github.com/k4rimDev/catalog-api/internal/service"
	"github.com/k4rimDev/catalog-api/pkg/logger"
	"github.com/valyala/fasthttp"
)

// Server is the HTTP edge of the catalog service. It maps routes to
// service calls and serves the OpenAPI document describing them.
type Server struct {
	logger   *logger.Logger
	services service.Services

	router  *router.Router
	http    *fasthttp.Server
	openapi []byte
	swagger []byte
}

// New returns a new instance of the HTTP server.
func New(logger *logger.Logger, services service.Services) (*Server, error) {
	s := &Server{
		logger:   logger,
		services: services,
		router:   router.New(),
	}

	openapi, err := buildOpenAPIDocument(routeTable)
	if err != nil {
		return nil, fmt.Errorf("build openapi document: %w", err)
	}
	s.openapi = openapi
	s.swagger = []byte(swaggerPage)

	s.registerRoutes()

	s.http = &fasthttp.Server{
		Handler: s.router.Handler,
		Name:    "catalog-api",
	}

	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.GET("/product/list-filter", s.handleListProducts)
	s.router.GET("/product/get-categories", s.handleListCategories)
	s.router.GET("/product/product/{id}", s.handleGetProduct)
	s.router.GET("/product/category/{id}", s.handleGetCategory)

	s.router.POST("/product/create-category", s.handleCreateCategory)
	s.router.POST("/product/create-product", s.handleCreateProduct)

	s.router.DELETE("/product/remove-product/{id}", s.handleDeleteProduct)
	s.router.DELETE("/product/remove-category/{id}", s.handleDeleteCategory)

	s.router.GET("/", s.handleSwaggerUI)
	s.router.GET("/swagger.json", s.handleOpenAPI)
}

// Handler exposes the routing handler, used directly in tests.
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.router.Handler
}

// Start listens on the given address and blocks until the server stops.
func (s *Server) Start(address string) error {
	s.logger.Info().Str("address", address).Msg("starting http server")
	return s.http.ListenAndServe(address)
}

// Stop gracefully shuts the server down, waiting for in-flight requests.
func (s *Server) Stop() error {
	return s.http.Shutdown()
}
