package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipeapp/internal/domain"
	"recipeapp/models"
)

type RecipeIngredientRepository struct {
	db *gorm.DB
}

func (r *RecipeIngredientRepository) Create(ctx context.Context, recipeID, ingredientID uint, amount float64, unit string) (domain.RecipeIngredient, error) {
	row := models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Amount:       amount,
		Unit:         unit,
	}
	if err := r.db.WithContext(ctx).Omit("Ingredient").Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.RecipeIngredient{}, domain.Duplicatef("recipe %d already lists ingredient %d", recipeID, ingredientID)
		}
		if isForeignKeyViolation(err) {
			return domain.RecipeIngredient{}, domain.NotFoundf("recipe %d or ingredient %d does not exist", recipeID, ingredientID)
		}
		return domain.RecipeIngredient{}, fmt.Errorf("create association %d/%d: %w", recipeID, ingredientID, err)
	}
	return toRecipeIngredient(row), nil
}

func (r *RecipeIngredientRepository) DeleteAllForRecipe(ctx context.Context, recipeID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete associations of recipe %d: %w", recipeID, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RecipeIngredientRepository) DeleteAllForIngredient(ctx context.Context, ingredientID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("ingredient_id = ?", ingredientID).Delete(&models.RecipeIngredient{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete associations of ingredient %d: %w", ingredientID, result.Error)
	}
	return result.RowsAffected, nil
}

// RecipesDependingOn returns, in id order, the recipes that list ingredientID
// as their only ingredient.
func (r *RecipeIngredientRepository) RecipesDependingOn(ctx context.Context, ingredientID uint) ([]uint, error) {
	db := r.db.WithContext(ctx)
	using := db.Model(&models.RecipeIngredient{}).
		Select("recipe_id").
		Where("ingredient_id = ?", ingredientID)

	ids := make([]uint, 0)
	err := db.Model(&models.RecipeIngredient{}).
		Where("recipe_id IN (?)", using).
		Group("recipe_id").
		Having("COUNT(*) = 1").
		Order("recipe_id asc").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("find recipes depending on ingredient %d: %w", ingredientID, err)
	}
	return ids, nil
}
