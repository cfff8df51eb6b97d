package service

import (
	"context"

	"recipeapp/internal/domain"
	"recipeapp/internal/ports"
)

// replaceRecipe rewrites an existing recipe and its full ingredient set. It
// must run inside a transaction: a failure at any step leaves the caller to
// roll back, so the previous associations stay intact.
func replaceRecipe(ctx context.Context, tx ports.Repositories, id uint, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error) {
	// Concurrent replaces of one recipe queue here instead of interleaving
	// their association rewrites.
	locked, err := tx.Recipes().LockByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if !locked {
		return domain.Recipe{}, domain.NotFoundf("recipe with id %d not found", id)
	}

	recipe, found, err := tx.Recipes().FindByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if !found {
		return domain.Recipe{}, domain.NotFoundf("recipe with id %d not found", id)
	}

	if err := domain.ValidateRecipe(fields, lines); err != nil {
		return domain.Recipe{}, err
	}

	if _, err := tx.RecipeIngredients().DeleteAllForRecipe(ctx, id); err != nil {
		return domain.Recipe{}, err
	}

	recipe.Apply(fields)
	if err := tx.Recipes().Update(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	if err := attachIngredients(ctx, tx, id, lines); err != nil {
		return domain.Recipe{}, err
	}

	return reload(ctx, tx, id)
}

// createRecipe inserts a validated recipe and its initial ingredient set.
func createRecipe(ctx context.Context, tx ports.Repositories, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error) {
	recipe := domain.Recipe{}
	recipe.Apply(fields)
	if err := tx.Recipes().Create(ctx, &recipe); err != nil {
		return domain.Recipe{}, err
	}

	if err := attachIngredients(ctx, tx, recipe.ID, lines); err != nil {
		return domain.Recipe{}, err
	}

	return reload(ctx, tx, recipe.ID)
}

// attachIngredients resolves each line's ingredient and creates its association.
func attachIngredients(ctx context.Context, tx ports.Repositories, recipeID uint, lines []domain.IngredientLine) error {
	for _, line := range lines {
		exists, err := tx.Ingredients().ExistsByID(ctx, line.IngredientID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFoundf("ingredient with id %d not found", line.IngredientID)
		}
		if line.Amount <= 0 {
			return domain.Validationf("ingredient amount must be greater than zero")
		}
		if _, err := tx.RecipeIngredients().Create(ctx, recipeID, line.IngredientID, line.Amount, line.Unit); err != nil {
			return err
		}
	}
	return nil
}

func reload(ctx context.Context, tx ports.Repositories, id uint) (domain.Recipe, error) {
	recipe, found, err := tx.Recipes().FindByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if !found {
		return domain.Recipe{}, domain.NotFoundf("recipe with id %d not found", id)
	}
	return recipe, nil
}
