package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recipeapp/internal/domain"
	"recipeapp/internal/ports"
	"recipeapp/models"
)

type RecipeRepository struct {
	db *gorm.DB
}

// withIngredients preloads associations in insertion order together with the
// referenced ingredient rows.
func withIngredients(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id asc")
		}).
		Preload("Ingredients.Ingredient")
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe is nil")
	}
	row := models.Recipe{
		Name:         recipe.Name,
		Instructions: recipe.Instructions,
		Vegetarian:   recipe.Vegetarian,
		Servings:     recipe.Servings,
	}
	if err := r.db.WithContext(ctx).Omit("Ingredients").Create(&row).Error; err != nil {
		return fmt.Errorf("create recipe %q: %w", recipe.Name, err)
	}
	recipe.ID = row.ID
	return nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (domain.Recipe, bool, error) {
	var row models.Recipe
	if err := withIngredients(r.db.WithContext(ctx)).Take(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, false, nil
		}
		return domain.Recipe{}, false, fmt.Errorf("find recipe %d: %w", id, err)
	}
	return toRecipe(row), true, nil
}

// FindByName returns the lowest-id recipe carrying name.
func (r *RecipeRepository) FindByName(ctx context.Context, name string) (domain.Recipe, bool, error) {
	var rows []models.Recipe
	err := withIngredients(r.db.WithContext(ctx)).
		Where("name = ?", name).
		Order("id asc").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return domain.Recipe{}, false, fmt.Errorf("find recipe %q: %w", name, err)
	}
	if len(rows) == 0 {
		return domain.Recipe{}, false, nil
	}
	return toRecipe(rows[0]), true, nil
}

func (r *RecipeRepository) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	return r.Find(ctx, ports.RecipeFilter{})
}

func (r *RecipeRepository) Find(ctx context.Context, filter ports.RecipeFilter) ([]domain.Recipe, error) {
	query := withIngredients(r.db.WithContext(ctx))
	if filter.Vegetarian != nil {
		query = query.Where("vegetarian = ?", *filter.Vegetarian)
	}
	if filter.Servings != nil {
		query = query.Where("servings = ?", *filter.Servings)
	}

	var rows []models.Recipe
	if err := query.Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return toRecipes(rows), nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe domain.Recipe) error {
	result := r.db.WithContext(ctx).
		Model(&models.Recipe{ID: recipe.ID}).
		Updates(map[string]any{
			"name":         recipe.Name,
			"instructions": recipe.Instructions,
			"vegetarian":   recipe.Vegetarian,
			"servings":     recipe.Servings,
		})
	if result.Error != nil {
		return fmt.Errorf("update recipe %d: %w", recipe.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("recipe with id %d not found", recipe.ID)
	}
	return nil
}

// DeleteByID removes the recipe's associations before the recipe.
func (r *RecipeRepository) DeleteByID(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return fmt.Errorf("delete associations of recipe %d: %w", id, err)
	}
	result := db.Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete recipe %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("recipe with id %d not found", id)
	}
	return nil
}

func (r *RecipeRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check recipe %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *RecipeRepository) LockByID(ctx context.Context, id uint) (bool, error) {
	ids := make([]uint, 0, 1)
	err := forUpdate(r.db.WithContext(ctx)).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("lock recipe %d: %w", id, err)
	}
	return len(ids) > 0, nil
}

func (r *RecipeRepository) LockAllUsing(ctx context.Context, ingredientID uint) ([]uint, error) {
	db := r.db.WithContext(ctx)
	using := db.Model(&models.RecipeIngredient{}).
		Select("recipe_id").
		Where("ingredient_id = ?", ingredientID)

	ids := make([]uint, 0)
	err := forUpdate(db).
		Model(&models.Recipe{}).
		Where("id IN (?)", using).
		Order("id asc").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("lock recipes using ingredient %d: %w", ingredientID, err)
	}
	return ids, nil
}
