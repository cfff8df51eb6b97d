package pages

import (
	"strconv"

	"github.com/a-h/templ"

	"recipeapp/internal/domain"
	"recipeapp/internal/views/components"
	"recipeapp/internal/views/layout"
	"recipeapp/internal/views/theme"
)

// CatalogView is everything the catalog page displays.
type CatalogView struct {
	Form        components.SearchForm
	Recipes     []domain.Recipe
	Ingredients []domain.Ingredient
	// Error is shown above the results when the search inputs were rejected.
	Error string
}

// Catalog renders the recipe catalog with its search form.
func Catalog(view CatalogView) templ.Component {
	th := theme.Resolve(view.Form.Theme)
	return layout.Layout("Recipe catalog", catalogBody(view, th), th)
}

func resultCount(n int) string {
	if n == 1 {
		return "1 recipe"
	}
	return strconv.Itoa(n) + " recipes"
}
