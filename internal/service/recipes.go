package service

import (
	"context"
	"strings"

	"recipeapp/internal/domain"
	applog "recipeapp/internal/log"
	"recipeapp/internal/ports"
	"recipeapp/internal/search"
)

// RecipeService manages recipes and their ingredient associations.
type RecipeService struct {
	store ports.Store
}

func NewRecipeService(store ports.Store) *RecipeService {
	return &RecipeService{store: store}
}

// Add creates a recipe with its initial ingredients in one transaction.
func (s *RecipeService) Add(ctx context.Context, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	if err := domain.ValidateRecipe(fields, lines); err != nil {
		return domain.Recipe{}, fail(ctx, "add recipe", err, "name", fields.Name)
	}

	var created domain.Recipe
	err := s.store.Transaction(ctx, func(tx ports.Repositories) error {
		var err error
		created, err = createRecipe(ctx, tx, fields, lines)
		return err
	})
	if err != nil {
		return domain.Recipe{}, fail(ctx, "add recipe", err, "name", fields.Name)
	}

	applog.Info(ctx, "recipe added", "recipe_id", created.ID, "name", created.Name, "ingredients", len(created.Ingredients))
	return created, nil
}

// Update replaces the recipe's fields and its whole ingredient set.
func (s *RecipeService) Update(ctx context.Context, id uint, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error) {
	fields.Name = strings.TrimSpace(fields.Name)

	var updated domain.Recipe
	err := s.store.Transaction(ctx, func(tx ports.Repositories) error {
		var err error
		updated, err = replaceRecipe(ctx, tx, id, fields, lines)
		return err
	})
	if err != nil {
		return domain.Recipe{}, fail(ctx, "update recipe", err, "recipe_id", id)
	}

	applog.Info(ctx, "recipe updated", "recipe_id", id, "ingredients", len(updated.Ingredients))
	return updated, nil
}

// Delete removes a recipe and its associations.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx ports.Repositories) error {
		locked, err := tx.Recipes().LockByID(ctx, id)
		if err != nil {
			return err
		}
		if !locked {
			return domain.NotFoundf("recipe with id %d not found", id)
		}
		return tx.Recipes().DeleteByID(ctx, id)
	})
	if err != nil {
		return fail(ctx, "delete recipe", err, "recipe_id", id)
	}

	applog.Info(ctx, "recipe deleted", "recipe_id", id)
	return nil
}

func (s *RecipeService) GetByID(ctx context.Context, id uint) (domain.Recipe, error) {
	recipe, found, err := s.store.Recipes().FindByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, fail(ctx, "get recipe", err, "recipe_id", id)
	}
	if !found {
		return domain.Recipe{}, fail(ctx, "get recipe", domain.NotFoundf("recipe with id %d not found", id))
	}
	return recipe, nil
}

// GetByName returns the lowest-id recipe with the given name.
func (s *RecipeService) GetByName(ctx context.Context, name string) (domain.Recipe, error) {
	name = strings.TrimSpace(name)
	recipe, found, err := s.store.Recipes().FindByName(ctx, name)
	if err != nil {
		return domain.Recipe{}, fail(ctx, "get recipe", err, "name", name)
	}
	if !found {
		return domain.Recipe{}, fail(ctx, "get recipe", domain.NotFoundf("recipe with name %s not found", name))
	}
	return recipe, nil
}

func (s *RecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.store.Recipes().ListAll(ctx)
	if err != nil {
		return nil, fail(ctx, "list recipes", err)
	}
	return recipes, nil
}

// Search returns the recipes satisfying every supplied criterion. The read
// runs in a transaction so it never observes a half-applied replace.
func (s *RecipeService) Search(ctx context.Context, criteria search.Criteria) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	err := s.store.Transaction(ctx, func(tx ports.Repositories) error {
		var err error
		recipes, err = search.NewEngine(tx.Recipes()).Search(ctx, criteria)
		return err
	})
	if err != nil {
		return nil, fail(ctx, "search recipes", err)
	}
	applog.Debug(ctx, "recipes searched", "matches", len(recipes))
	return recipes, nil
}
