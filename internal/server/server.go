package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-engine/internal/ats"
	"github.com/jonathan/resume-engine/internal/binding"
	"github.com/jonathan/resume-engine/internal/cache"
	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/registry"
	"github.com/jonathan/resume-engine/internal/rendering"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	cache      *cache.TemplateCache
	registry   *registry.Registry
	renderer   *rendering.Renderer
	optimizer  *ats.Optimizer
	validator  *validator.Validate
}

// New creates a new server instance from the engine configuration
func New(cfg *config.Config) (*Server, error) {
	templateCache := cache.New(
		cache.WithMaxSize(cfg.CacheMaxSize),
		cache.WithTTL(cfg.CacheTTL()),
	)

	reg, err := registry.New(cfg.TemplateDir, templateCache)
	if err != nil {
		return nil, fmt.Errorf("failed to open template registry: %w", err)
	}

	s := &Server{
		cache:     templateCache,
		registry:  reg,
		renderer:  rendering.New(reg, binding.New()),
		optimizer: ats.New(ats.WithTimeout(cfg.OptimizerDeadline())),
		validator: validator.New(),
	}

	mux := http.NewServeMux()
	s.route(mux, "POST /render", s.handleRender)
	s.route(mux, "POST /render/preview", s.handleRenderPreview)
	s.route(mux, "POST /optimize", s.handleOptimize)
	s.route(mux, "POST /optimize/realtime", s.handleRealTimeScore)
	s.route(mux, "POST /templates/validate", s.handleValidateTemplate)
	s.route(mux, "GET /templates", s.handleListTemplates)
	s.route(mux, "GET /cache/stats", s.handleCacheStats)
	s.route(mux, "POST /cache/cleanup", s.handleCacheCleanup)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", observability.MetricsHandler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// route registers a handler wrapped with per-pattern metrics collection
func (s *Server) route(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	mux.Handle(pattern, observability.Middleware(pattern, handler))
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured router, primarily for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with method, path, and duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
