package models

import "time"

type RecipeIngredient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// A recipe lists each ingredient at most once.
	RecipeID     uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient;index" json:"ingredient_id"`

	Amount float64 `gorm:"not null" json:"amount"`
	Unit   string  `gorm:"not null" json:"unit"`

	// Preloaded on reads to resolve the ingredient name. Ingredients still
	// referenced by a recipe cannot be deleted.
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"ingredient,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
