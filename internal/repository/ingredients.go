package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recipeapp/internal/domain"
	"recipeapp/models"
)

type IngredientRepository struct {
	db *gorm.DB
}

func (r *IngredientRepository) Create(ctx context.Context, name string) (domain.Ingredient, error) {
	row := models.Ingredient{Name: name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Ingredient{}, domain.Duplicatef("ingredient with name %s already exists", name)
		}
		return domain.Ingredient{}, fmt.Errorf("create ingredient %q: %w", name, err)
	}
	return toIngredient(row), nil
}

func (r *IngredientRepository) Update(ctx context.Context, ingredient domain.Ingredient) error {
	result := r.db.WithContext(ctx).
		Model(&models.Ingredient{ID: ingredient.ID}).
		Update("name", ingredient.Name)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.Duplicatef("ingredient with name %s already exists", ingredient.Name)
		}
		return fmt.Errorf("update ingredient %d: %w", ingredient.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("ingredient with id %d not found", ingredient.ID)
	}
	return nil
}

func (r *IngredientRepository) FindByID(ctx context.Context, id uint) (domain.Ingredient, bool, error) {
	var row models.Ingredient
	if err := r.db.WithContext(ctx).Take(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Ingredient{}, false, nil
		}
		return domain.Ingredient{}, false, fmt.Errorf("find ingredient %d: %w", id, err)
	}
	return toIngredient(row), true, nil
}

func (r *IngredientRepository) FindByName(ctx context.Context, name string) (domain.Ingredient, bool, error) {
	var row models.Ingredient
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Ingredient{}, false, nil
		}
		return domain.Ingredient{}, false, fmt.Errorf("find ingredient %q: %w", name, err)
	}
	return toIngredient(row), true, nil
}

func (r *IngredientRepository) ListAll(ctx context.Context) ([]domain.Ingredient, error) {
	var rows []models.Ingredient
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	ingredients := make([]domain.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, toIngredient(row))
	}
	return ingredients, nil
}

// DeleteByID removes the ingredient's associations before the ingredient.
// Callers wanting both steps to be atomic run it inside Store.Transaction.
func (r *IngredientRepository) DeleteByID(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("ingredient_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return fmt.Errorf("delete associations of ingredient %d: %w", id, err)
	}
	result := db.Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete ingredient %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("ingredient with id %d not found", id)
	}
	return nil
}

func (r *IngredientRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Ingredient{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check ingredient %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *IngredientRepository) LockByID(ctx context.Context, id uint) (bool, error) {
	ids := make([]uint, 0, 1)
	err := forUpdate(r.db.WithContext(ctx)).
		Model(&models.Ingredient{}).
		Where("id = ?", id).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("lock ingredient %d: %w", id, err)
	}
	return len(ids) > 0, nil
}
