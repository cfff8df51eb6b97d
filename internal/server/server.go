package server

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"recipeapp/internal/handlers"
	applog "recipeapp/internal/log"
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr string
	// RateLimit is the sustained requests per second. Zero or less disables limiting.
	RateLimit      float64
	RateLimitBurst int

	Ingredients handlers.IngredientCatalog
	Recipes     handlers.RecipeCatalog
}

// Server wraps an http.Server and exposes helpers for bootstrapping a
// production-ready web service.
type Server struct {
	config      Config
	rateLimiter *rate.Limiter
	httpServer  *http.Server
}

// New builds a new Server using the provided configuration.
func New(cfg Config) (*Server, error) {
	applog.Debug(context.Background(), "initializing server",
		"addr", cfg.Addr,
		"rateLimit", cfg.RateLimit,
		"rateLimitBurst", cfg.RateLimitBurst,
	)

	s := &Server{config: cfg}

	if cfg.RateLimit > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			applog.Debug(context.Background(), "rate limit burst not provided, using default")
			burst = 20
			s.config.RateLimitBurst = burst
		}
		s.rateLimiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	handlers.Configure(cfg.Ingredients, cfg.Recipes)

	applog.Debug(context.Background(), "handler dependencies configured")

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	applog.Debug(context.Background(), "http handler chain prepared")

	return s, nil
}

// Start begins serving HTTP traffic using the underlying http.Server.
func (s *Server) Start() error {
	applog.Debug(context.Background(), "server starting listener", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server with a timeout.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
