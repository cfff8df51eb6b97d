package domain

import "strings"

// Recipe is a catalog entry together with the ingredient associations it
// owns. A persisted recipe always has at least one association.
type Recipe struct {
	ID           uint
	Name         string
	Instructions string
	Vegetarian   bool
	Servings     int
	Ingredients  []RecipeIngredient
}

// Fields returns the recipe's scalar fields.
func (r Recipe) Fields() RecipeFields {
	return RecipeFields{
		Name:         r.Name,
		Instructions: r.Instructions,
		Vegetarian:   r.Vegetarian,
		Servings:     r.Servings,
	}
}

// Apply overwrites the recipe's scalar fields, leaving id and associations alone.
func (r *Recipe) Apply(fields RecipeFields) {
	r.Name = fields.Name
	r.Instructions = fields.Instructions
	r.Vegetarian = fields.Vegetarian
	r.Servings = fields.Servings
}

// HasIngredient reports whether any association references ingredientID.
func (r Recipe) HasIngredient(ingredientID uint) bool {
	for _, ri := range r.Ingredients {
		if ri.IngredientID == ingredientID {
			return true
		}
	}
	return false
}

// RecipeIngredient links one recipe to one ingredient with a quantity.
// IngredientName is informational and only populated on reads.
type RecipeIngredient struct {
	ID             uint
	RecipeID       uint
	IngredientID   uint
	IngredientName string
	Amount         float64
	Unit           string
}

// RecipeFields are the scalar fields supplied when creating or updating a recipe.
type RecipeFields struct {
	Name         string
	Instructions string
	Vegetarian   bool
	Servings     int
}

// Validate checks servings and name.
func (f RecipeFields) Validate() error {
	if f.Servings <= 0 {
		return BadRequestf("servings must be greater than zero")
	}
	if strings.TrimSpace(f.Name) == "" {
		return Validationf("recipe name must not be empty")
	}
	return nil
}

// IngredientLine is one requested association in a create or update call.
type IngredientLine struct {
	IngredientID uint
	Amount       float64
	Unit         string
}

// ValidateIngredientLines checks a complete replacement ingredient list.
func ValidateIngredientLines(lines []IngredientLine) error {
	if len(lines) == 0 {
		return Validationf("recipe must have at least one ingredient")
	}
	seen := make(map[uint]struct{}, len(lines))
	for _, line := range lines {
		if line.Amount <= 0 {
			return Validationf("ingredient amount must be greater than zero")
		}
		if strings.TrimSpace(line.Unit) == "" {
			return Validationf("ingredient %d: unit must not be empty", line.IngredientID)
		}
		if _, dup := seen[line.IngredientID]; dup {
			return Validationf("ingredient %d is listed more than once", line.IngredientID)
		}
		seen[line.IngredientID] = struct{}{}
	}
	return nil
}

// ValidateRecipe runs every field-level check for a create or update in a
// fixed order: servings, ingredient list, name, then each line.
func ValidateRecipe(fields RecipeFields, lines []IngredientLine) error {
	if fields.Servings <= 0 {
		return BadRequestf("servings must be greater than zero")
	}
	if len(lines) == 0 {
		return Validationf("recipe must have at least one ingredient")
	}
	if err := fields.Validate(); err != nil {
		return err
	}
	return ValidateIngredientLines(lines)
}
