package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipeapp/internal/db/mock"
	"recipeapp/internal/handlers"
	"recipeapp/internal/repository"
	"recipeapp/internal/service"
)

func newTestConfig(t *testing.T) Config {
	t.Helper()
	db, err := mock.New(context.Background())
	if err != nil {
		t.Fatalf("failed to open mock database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	store := repository.New(db)
	return Config{
		Addr:        ":9090",
		Ingredients: service.NewIngredientService(store),
		Recipes:     service.NewRecipeService(store),
	}
}

func TestServerHandler(t *testing.T) {
	srv, err := New(newTestConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
	})

	if srv.httpServer.Addr != ":9090" {
		t.Fatalf("expected server addr :9090, got %q", srv.httpServer.Addr)
	}

	handler := srv.Handler()
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}
	if rr.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a request id header on application routes")
	}
}

func TestServerServesSeededCatalog(t *testing.T) {
	srv, err := New(newTestConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
	})

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/api/v1/recipes/name/Cake", http.StatusOK, `"name":"Cake"`},
		{"/api/v1/recipes/non-vegetarian", http.StatusOK, "Roast Chicken"},
		{"/api/v1/ingredients/name/Flour", http.StatusOK, `"name":"Flour"`},
		{"/api/v1/recipes/search?servings=nope", http.StatusBadRequest, "servings"},
		{"/?vegetarian=true", http.StatusOK, "Pancakes"},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rr.Code != tt.status {
			t.Fatalf("GET %s = %d, want %d: %s", tt.path, rr.Code, tt.status, rr.Body.String())
		}
		if !strings.Contains(rr.Body.String(), tt.contains) {
			t.Fatalf("GET %s body missing %q: %s", tt.path, tt.contains, rr.Body.String())
		}
	}
}

func TestServerCreatesRecipeOverHTTP(t *testing.T) {
	srv, err := New(newTestConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
	})

	body := `{"recipe":{"name":"Omelette","instructions":"Whisk and fry","isVegetarian":true,"servings":1},` +
		`"recipeIngredients":[{"ingredientId":3,"amount":3,"unit":"pcs"}]}`
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewBufferString(body)))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"ingredientName":"Eggs"`) {
		t.Fatalf("expected resolved ingredient name: %s", rr.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, err := New(Config{Addr: ":0"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
	})

	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "recipeapp_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
	if rr.Header().Get(requestIDHeader) != "" {
		t.Fatal("expected /metrics to bypass the middleware chain")
	}
}

func TestStopWithoutStart(t *testing.T) {
	srv, err := New(Config{Addr: ":0"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
	})

	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
