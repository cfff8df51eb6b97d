package domain

import "strings"

// Ingredient is a named ingredient shared by any number of recipes. Names are
// unique across the catalog (compared case-sensitively).
type Ingredient struct {
	ID   uint
	Name string
}

// ValidateIngredientName rejects blank ingredient names.
func ValidateIngredientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return Validationf("ingredient name must not be empty")
	}
	return nil
}
