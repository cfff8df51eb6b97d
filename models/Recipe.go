package models

import "time"

type Recipe struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	Name         string             `gorm:"index;not null" json:"name"`
	Instructions string             `gorm:"type:text;not null" json:"instructions"`
	Vegetarian   bool               `gorm:"not null" json:"vegetarian"`
	Servings     int                `gorm:"not null" json:"servings"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
