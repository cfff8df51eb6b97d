package repository

import (
	"recipeapp/internal/domain"
	"recipeapp/models"
)

func toIngredient(row models.Ingredient) domain.Ingredient {
	return domain.Ingredient{ID: row.ID, Name: row.Name}
}

func toRecipeIngredient(row models.RecipeIngredient) domain.RecipeIngredient {
	ri := domain.RecipeIngredient{
		ID:           row.ID,
		RecipeID:     row.RecipeID,
		IngredientID: row.IngredientID,
		Amount:       row.Amount,
		Unit:         row.Unit,
	}
	if row.Ingredient != nil {
		ri.IngredientName = row.Ingredient.Name
	}
	return ri
}

func toRecipe(row models.Recipe) domain.Recipe {
	recipe := domain.Recipe{
		ID:           row.ID,
		Name:         row.Name,
		Instructions: row.Instructions,
		Vegetarian:   row.Vegetarian,
		Servings:     row.Servings,
		Ingredients:  make([]domain.RecipeIngredient, 0, len(row.Ingredients)),
	}
	for _, ri := range row.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, toRecipeIngredient(ri))
	}
	return recipe
}

func toRecipes(rows []models.Recipe) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, toRecipe(row))
	}
	return recipes
}
