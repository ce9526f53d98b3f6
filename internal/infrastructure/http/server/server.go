// Package server provides the JSON API HTTP server implementation
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/infrastructure/config"
	"github.com/kondate-ai/kondate/internal/infrastructure/http/handlers"
	"github.com/kondate-ai/kondate/internal/infrastructure/http/middleware"
	"github.com/kondate-ai/kondate/internal/infrastructure/monitoring"
	"github.com/kondate-ai/kondate/internal/infrastructure/session"
	"github.com/kondate-ai/kondate/internal/ports/inbound"
)

// Server represents the API HTTP server
type Server struct {
	config        *config.Config
	logger        *zap.Logger
	server        *http.Server
	router        *chi.Mux
	recipeService inbound.RecipeService
	sessions      *session.Store
	metrics       *monitoring.Metrics
}

// NewServer creates a new API server instance
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	recipeService inbound.RecipeService,
	sessions *session.Store,
	metrics *monitoring.Metrics,
) *Server {
	server := &Server{
		config:        cfg,
		logger:        log,
		recipeService: recipeService,
		sessions:      sessions,
		metrics:       metrics,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger, s.config))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(s.config.RateLimit))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	if s.config.Monitoring.EnableMetrics {
		r.Use(middleware.Metrics(s.metrics))
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	// Health check endpoint
	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealthCheck)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *Server) setupAPIV1Routes(r chi.Router) {
	recipeH := handlers.NewRecipeAPIHandlers(s.recipeService, s.logger)
	nutritionH := handlers.NewNutritionAPIHandlers(s.recipeService, s.logger)

	// Every API route acts on the caller's session
	r.Use(session.Middleware(s.sessions))

	// No server-side timeout is imposed on generation; the collaborator
	// call is a single blocking exchange bounded only by its transport.
	r.Route("/recipes", func(r chi.Router) {
		r.Post("/generate", recipeH.Generate)
		r.Get("/", recipeH.History)
	})

	r.Route("/nutrition", func(r chi.Router) {
		r.Get("/ledger", nutritionH.Ledger)
		r.Get("/summary", nutritionH.Summary)
		r.Get("/export", nutritionH.Export)
	})
}

// Start starts the API HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the API server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// Router returns the configured router, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}

// handleHealthCheck provides the health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
