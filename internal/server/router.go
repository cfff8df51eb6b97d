package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recipeapp/internal/handlers"
	applog "recipeapp/internal/log"
)

func newRouter() *http.ServeMux {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/api/v1/ingredients", handlers.IngredientResource)
	mux.HandleFunc("/api/v1/ingredients/", handlers.IngredientResource)
	applog.Debug(context.Background(), "route registered", "path", "/api/v1/ingredients")
	mux.HandleFunc("/api/v1/recipes", handlers.RecipeResource)
	mux.HandleFunc("/api/v1/recipes/", handlers.RecipeResource)
	applog.Debug(context.Background(), "route registered", "path", "/api/v1/recipes")
	mux.HandleFunc("/", handlers.Catalog)
	applog.Debug(context.Background(), "route registered", "path", "/")
	return mux
}

// routes wraps the application routes in the middleware chain. The metrics
// endpoint bypasses it so scrapes are neither limited nor counted.
func (s *Server) routes() http.Handler {
	app := s.withMiddleware(newRouter().ServeHTTP)

	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	applog.Debug(context.Background(), "route registered", "path", "/metrics")
	root.Handle("/", app)
	return root
}
