// Package components holds reusable fragments of the catalog page.
package components

import (
	"fmt"
	"strconv"
	"strings"

	"recipeapp/internal/domain"
)

// ResultsTarget is the element id the search form swaps results into.
const ResultsTarget = "catalog-results"

// SearchForm carries the current search inputs echoed back into the form.
type SearchForm struct {
	Vegetarian  string
	Servings    string
	Include     string
	Exclude     string
	Instruction string
	Theme       string
}

type dietOption struct {
	Value string
	Label string
}

var dietOptions = []dietOption{
	{Value: "", Label: "Any"},
	{Value: "true", Label: "Vegetarian"},
	{Value: "false", Label: "Non-vegetarian"},
}

// IngredientLine formats an association as "200 g Flour".
func IngredientLine(ri domain.RecipeIngredient) string {
	name := ri.IngredientName
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("ingredient #%d", ri.IngredientID)
	}
	return strconv.FormatFloat(ri.Amount, 'f', -1, 64) + " " + ri.Unit + " " + name
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func dietLabel(vegetarian bool) string {
	if vegetarian {
		return "Vegetarian"
	}
	return "Non-vegetarian"
}
