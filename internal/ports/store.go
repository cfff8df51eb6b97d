// Package ports declares the persistence contracts consumed by the search
// engine and the service facade. Implementations live in internal/repository.
package ports

import (
	"context"

	"recipeapp/internal/domain"
)

// IngredientStore persists ingredients.
type IngredientStore interface {
	// Create inserts a new ingredient. A name collision yields a duplicate error.
	Create(ctx context.Context, name string) (domain.Ingredient, error)
	Update(ctx context.Context, ingredient domain.Ingredient) error
	FindByID(ctx context.Context, id uint) (domain.Ingredient, bool, error)
	FindByName(ctx context.Context, name string) (domain.Ingredient, bool, error)
	ListAll(ctx context.Context) ([]domain.Ingredient, error)
	// DeleteByID removes every association referencing the ingredient, then the ingredient.
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	// LockByID takes a row lock on the ingredient until the surrounding
	// transaction ends and reports whether it exists.
	LockByID(ctx context.Context, id uint) (bool, error)
}

// RecipeFilter carries equality predicates a RecipeStore may evaluate natively.
// Nil fields are unconstrained.
type RecipeFilter struct {
	Vegetarian *bool
	Servings   *int
}

// RecipeStore persists recipes. Reads return recipes with their associations.
type RecipeStore interface {
	// Create inserts the scalar fields and assigns recipe.ID.
	Create(ctx context.Context, recipe *domain.Recipe) error
	FindByID(ctx context.Context, id uint) (domain.Recipe, bool, error)
	FindByName(ctx context.Context, name string) (domain.Recipe, bool, error)
	ListAll(ctx context.Context) ([]domain.Recipe, error)
	Find(ctx context.Context, filter RecipeFilter) ([]domain.Recipe, error)
	// Update writes the scalar fields only.
	Update(ctx context.Context, recipe domain.Recipe) error
	// DeleteByID removes the recipe's associations, then the recipe.
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	// LockByID takes a row lock on the recipe until the surrounding
	// transaction ends and reports whether it exists.
	LockByID(ctx context.Context, id uint) (bool, error)
	// LockAllUsing locks, in id order, every recipe that lists ingredientID
	// and returns their ids.
	LockAllUsing(ctx context.Context, ingredientID uint) ([]uint, error)
}

// RecipeIngredientStore persists the recipe/ingredient association rows.
type RecipeIngredientStore interface {
	Create(ctx context.Context, recipeID, ingredientID uint, amount float64, unit string) (domain.RecipeIngredient, error)
	DeleteAllForRecipe(ctx context.Context, recipeID uint) (int64, error)
	DeleteAllForIngredient(ctx context.Context, ingredientID uint) (int64, error)
	// RecipesDependingOn lists recipes whose only association references ingredientID.
	RecipesDependingOn(ctx context.Context, ingredientID uint) ([]uint, error)
}

// Repositories groups the stores that share one connection or transaction.
type Repositories interface {
	Ingredients() IngredientStore
	Recipes() RecipeStore
	RecipeIngredients() RecipeIngredientStore
}

// Store is the entry point to persistence.
type Store interface {
	Repositories
	// Transaction runs fn against repositories bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise,
	// including when fn panics.
	Transaction(ctx context.Context, fn func(tx Repositories) error) error
}
