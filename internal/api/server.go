package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nauticalab/uconfig/internal/document"
)

// Server represents the HTTP API server
type Server struct {
	router  *chi.Mux
	handler *Handler
	addr    string
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port      int
	Dir       string
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// NewServer creates a new API server with the given configuration
func NewServer(config ServerConfig) (*Server, error) {
	dir, err := document.NewDir(config.Dir)
	if err != nil {
		return nil, err
	}

	// Create handler
	handler := NewHandler(
		dir,
		config.Version,
		config.GitCommit,
		config.BuildTime,
		config.GoVersion,
	)

	// Create router
	router := chi.NewRouter()

	// Setup middleware
	setupMiddleware(router)

	// Setup routes
	setupRoutes(router, handler)

	return &Server{
		router:  router,
		handler: handler,
		addr:    fmt.Sprintf(":%d", config.Port),
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures the middleware chain
func setupMiddleware(router *chi.Mux) {
	// Request logger
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.Default(),
		NoColor: false,
	}))

	// Recoverer from panics
	router.Use(middleware.Recoverer)

	// Timeout for requests
	router.Use(middleware.Timeout(60 * time.Second))
}

// setupRoutes configures the API routes
func setupRoutes(router *chi.Mux, handler *Handler) {
	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// Service endpoints
		r.Get("/health", handler.Health)
		r.Get("/version", handler.Version)

		// Config endpoints
		r.Get("/configs", handler.ListConfigs)
		r.Get("/configs/{name}", handler.GetConfig)
		r.Get("/configs/{name}/diff/{other}", handler.DiffConfigs)
	})
}

// StartWithContext starts the HTTP server with graceful shutdown support
func (s *Server) StartWithContext(ctx context.Context) error {
	log.Printf("Starting API server on %s serving %s", s.addr, s.handler.dir.Root)

	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to signal server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", s.addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		log.Println("Shutting down server...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
			return err
		}

		log.Println("Server stopped gracefully")
		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}
