package handlers

import (
	"context"

	"recipeapp/internal/domain"
	"recipeapp/internal/search"
)

// IngredientCatalog is the ingredient side of the service facade.
type IngredientCatalog interface {
	Add(ctx context.Context, name string) (domain.Ingredient, error)
	Update(ctx context.Context, id uint, name string) (domain.Ingredient, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (domain.Ingredient, error)
	GetByName(ctx context.Context, name string) (domain.Ingredient, error)
	List(ctx context.Context) ([]domain.Ingredient, error)
}

// RecipeCatalog is the recipe side of the service facade.
type RecipeCatalog interface {
	Add(ctx context.Context, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error)
	Update(ctx context.Context, id uint, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (domain.Recipe, error)
	GetByName(ctx context.Context, name string) (domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
	Search(ctx context.Context, criteria search.Criteria) ([]domain.Recipe, error)
}

var (
	ingredients IngredientCatalog
	recipes     RecipeCatalog
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(ic IngredientCatalog, rc RecipeCatalog) {
	ingredients = ic
	recipes = rc
}
