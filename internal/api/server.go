// Package api provides the HTTP API server and handlers for the Bookden
// application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bookdenapp/bookden-server/internal/http/response"
	"github.com/bookdenapp/bookden-server/internal/resource"
	"github.com/bookdenapp/bookden-server/internal/service"
	"github.com/bookdenapp/bookden-server/internal/validation"
)

// Services groups the business logic services used by the API server.
type Services struct {
	Instance *service.InstanceService
	Catalog  *service.CatalogService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services  *Services
	resolver  *resource.Resolver
	validator *validation.Validator
	router    *chi.Mux
	api       huma.API
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, resolver *resource.Resolver, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	RegisterErrorHandler()

	s := &Server{
		services:  services,
		resolver:  resolver,
		validator: validation.New(),
		router:    router,
		logger:    logger,
	}

	s.setupMiddleware()
	// humachi.New registers huma's routes on the mux, so it must run after
	// the middleware stack is installed (chi panics otherwise).
	s.api = humachi.New(router, huma.DefaultConfig("Bookden API", service.Version))
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
}

// setupRoutes configures all HTTP routes. The catalog is read-only, so the
// whole surface is GETs: named operations under /api/v1, plus the
// address-style resolver and a health check as plain chi routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)
	s.router.Get("/api/v1/resolve", s.handleResolve)

	s.registerInstanceRoutes()
	s.registerBookRoutes()
	s.registerGenreRoutes()
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
