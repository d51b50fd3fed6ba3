// Package api provides the HTTP API server and handlers for the BrightSide
// local business directory.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/brightsideapp/brightside-server/internal/http/response"
	"github.com/brightsideapp/brightside-server/internal/location"
	"github.com/brightsideapp/brightside-server/internal/sse"
	"github.com/brightsideapp/brightside-server/internal/store"
)

// apiVersion is reported by the OpenAPI spec and the health endpoint.
const apiVersion = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	store      *store.Store
	services   *Services
	location   *location.Service
	sseHandler *sse.Handler
	router     *chi.Mux
	api        huma.API
	logger     *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, loc *location.Service, sseHandler *sse.Handler, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	limiter := NewRateLimiter(300, time.Minute, 100)
	router.Use(RateLimitMiddleware(limiter, logger))

	humaConfig := huma.DefaultConfig("BrightSide API", apiVersion)
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	humaAPI := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:      st,
		services:   services,
		location:   loc,
		sseHandler: sseHandler,
		router:     router,
		api:        humaAPI,
		logger:     logger,
	}

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check stays outside the OpenAPI surface.
	s.router.Get("/health", s.handleHealthCheck)

	// Event stream is raw SSE, also outside huma.
	if s.sseHandler != nil {
		s.router.Get("/api/v1/events/stream", s.sseHandler.ServeHTTP)
	}

	// Report exports stream files rather than JSON envelopes.
	s.router.Get("/api/v1/reports/export", s.handleExportReport)

	s.registerBusinessRoutes()
	s.registerReviewRoutes()
	s.registerBookmarkRoutes()
	s.registerDealRoutes()
	s.registerSessionRoutes()
	s.registerReportRoutes()
	s.registerSearchRoutes()
	s.registerLocationRoutes()
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status":  "healthy",
		"version": apiVersion,
	}, s.logger)
}
