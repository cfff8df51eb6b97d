package main

import (
	"context"
	"errors"
	"fmt"

	"recipeapp/internal/domain"
	applog "recipeapp/internal/log"
)

type ingredientCatalog interface {
	Add(ctx context.Context, name string) (domain.Ingredient, error)
	GetByName(ctx context.Context, name string) (domain.Ingredient, error)
}

type recipeCatalog interface {
	Add(ctx context.Context, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error)
	Update(ctx context.Context, id uint, fields domain.RecipeFields, lines []domain.IngredientLine) (domain.Recipe, error)
	GetByName(ctx context.Context, name string) (domain.Recipe, error)
}

type importer struct {
	ingredients ingredientCatalog
	recipes     recipeCatalog
}

type ingredientSummary struct {
	added   int
	skipped int
}

type recipeSummary struct {
	added              int
	replaced           int
	ingredientsCreated int
}

func (imp *importer) importIngredients(ctx context.Context, path string) (ingredientSummary, error) {
	var summary ingredientSummary

	names, err := readIngredientNames(path)
	if err != nil {
		return summary, err
	}

	for idx, name := range names {
		_, created, err := imp.ensureIngredient(ctx, name)
		if err != nil {
			return summary, fmt.Errorf("row %d (%s): %w", idx+2, name, err)
		}
		if created {
			summary.added++
		} else {
			summary.skipped++
		}
	}

	return summary, nil
}

func (imp *importer) importRecipes(ctx context.Context, path string) (recipeSummary, error) {
	var summary recipeSummary

	catalog, err := readRecipeCatalog(path)
	if err != nil {
		return summary, err
	}

	for _, entry := range catalog.Recipes {
		instructions, err := entry.resolveInstructions(path)
		if err != nil {
			return summary, fmt.Errorf("recipe %q: %w", entry.Name, err)
		}

		lines := make([]domain.IngredientLine, 0, len(entry.Ingredients))
		for _, item := range entry.Ingredients {
			ingredient, created, err := imp.ensureIngredient(ctx, item.Name)
			if err != nil {
				return summary, fmt.Errorf("recipe %q ingredient %q: %w", entry.Name, item.Name, err)
			}
			if created {
				summary.ingredientsCreated++
			}
			lines = append(lines, domain.IngredientLine{
				IngredientID: ingredient.ID,
				Amount:       item.Amount,
				Unit:         item.Unit,
			})
		}

		fields := domain.RecipeFields{
			Name:         entry.Name,
			Instructions: instructions,
			Vegetarian:   entry.Vegetarian,
			Servings:     entry.Servings,
		}

		existing, err := imp.recipes.GetByName(ctx, entry.Name)
		switch {
		case err == nil:
			if _, err := imp.recipes.Update(ctx, existing.ID, fields, lines); err != nil {
				return summary, fmt.Errorf("replace recipe %q: %w", entry.Name, err)
			}
			summary.replaced++
		case errors.Is(err, domain.ErrNotFound):
			if _, err := imp.recipes.Add(ctx, fields, lines); err != nil {
				return summary, fmt.Errorf("add recipe %q: %w", entry.Name, err)
			}
			summary.added++
		default:
			return summary, fmt.Errorf("look up recipe %q: %w", entry.Name, err)
		}
	}

	applog.Info(ctx, "recipe catalog imported", "path", path, "added", summary.added, "replaced", summary.replaced)
	return summary, nil
}

// ensureIngredient returns the ingredient named name, creating it when absent.
func (imp *importer) ensureIngredient(ctx context.Context, name string) (domain.Ingredient, bool, error) {
	existing, err := imp.ingredients.GetByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Ingredient{}, false, err
	}

	created, err := imp.ingredients.Add(ctx, name)
	if err != nil {
		return domain.Ingredient{}, false, err
	}
	return created, true, nil
}
