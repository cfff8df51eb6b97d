package search

import (
	"context"
	"fmt"

	"recipeapp/internal/domain"
	"recipeapp/internal/ports"
)

// Engine evaluates criteria against a recipe store. Equality predicates are
// pushed down to the store; the full pipeline is then applied in memory, so
// the result equals a plain scan of every recipe.
type Engine struct {
	Recipes ports.RecipeStore
}

// NewEngine returns an Engine reading from recipes.
func NewEngine(recipes ports.RecipeStore) *Engine {
	return &Engine{Recipes: recipes}
}

// Search returns the recipes satisfying every supplied criterion.
func (e *Engine) Search(ctx context.Context, c Criteria) ([]domain.Recipe, error) {
	if e == nil || e.Recipes == nil {
		return nil, fmt.Errorf("search engine has no recipe store")
	}

	candidates, err := e.Recipes.Find(ctx, ports.RecipeFilter{
		Vegetarian: c.Vegetarian,
		Servings:   c.Servings,
	})
	if err != nil {
		return nil, fmt.Errorf("load candidate recipes: %w", err)
	}

	return Filter(candidates, c), nil
}
