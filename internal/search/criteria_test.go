package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipeapp/internal/domain"
)

const (
	flour uint = iota + 1
	sugar
	eggs
	chicken
)

func recipe(id uint, name string, vegetarian bool, servings int, instructions string, ingredients ...uint) domain.Recipe {
	r := domain.Recipe{
		ID:           id,
		Name:         name,
		Instructions: instructions,
		Vegetarian:   vegetarian,
		Servings:     servings,
	}
	for i, ingredientID := range ingredients {
		r.Ingredients = append(r.Ingredients, domain.RecipeIngredient{
			ID:           uint(i + 1),
			RecipeID:     id,
			IngredientID: ingredientID,
			Amount:       1,
			Unit:         "g",
		})
	}
	return r
}

func catalog() []domain.Recipe {
	return []domain.Recipe{
		recipe(1, "Cake", true, 4, "Mix and BAKE for 40 minutes", flour, sugar, eggs),
		recipe(2, "Bread", true, 4, "Knead, prove, bake", flour),
		recipe(3, "Roast Chicken", false, 4, "Roast in the oven", chicken),
		recipe(4, "Pancakes", true, 2, "Fry in a pan", flour, eggs),
	}
}

func names(recipes []domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	yes := true
	no := false
	four := 4
	seven := 7

	cases := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"empty criteria returns all", Criteria{}, []string{"Cake", "Bread", "Roast Chicken", "Pancakes"}},
		{"vegetarian", Criteria{Vegetarian: &yes}, []string{"Cake", "Bread", "Pancakes"}},
		{"non vegetarian", Criteria{Vegetarian: &no}, []string{"Roast Chicken"}},
		{"servings exact", Criteria{Servings: &four}, []string{"Cake", "Bread", "Roast Chicken"}},
		{"servings without match", Criteria{Servings: &seven}, []string{}},
		{"include requires every id", Criteria{IncludeIngredients: []uint{flour, eggs}}, []string{"Cake", "Pancakes"}},
		{"include single", Criteria{IncludeIngredients: []uint{sugar}}, []string{"Cake"}},
		{"exclude removes any match", Criteria{ExcludeIngredients: []uint{sugar, chicken}}, []string{"Bread", "Pancakes"}},
		{"instruction ignores case", Criteria{Instruction: "bake"}, []string{"Cake", "Bread"}},
		{"instruction upper needle", Criteria{Instruction: "OVEN"}, []string{"Roast Chicken"}},
		{
			"conjunction of vegetarian servings instruction",
			Criteria{Vegetarian: &yes, Servings: &four, Instruction: "bake"},
			[]string{"Cake", "Bread"},
		},
		{
			"include and exclude",
			Criteria{IncludeIngredients: []uint{flour}, ExcludeIngredients: []uint{eggs}},
			[]string{"Bread"},
		},
		{"empty id lists are unconstrained", Criteria{IncludeIngredients: []uint{}, ExcludeIngredients: []uint{}}, []string{"Cake", "Bread", "Roast Chicken", "Pancakes"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(catalog(), tt.criteria)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestCriteriaIsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{IncludeIngredients: []uint{}}.IsEmpty())
	assert.False(t, Vegetarian(false).IsEmpty())
	assert.False(t, Servings(2).IsEmpty())
	assert.False(t, InstructionContains("bake").IsEmpty())
	assert.False(t, Criteria{ExcludeIngredients: []uint{1}}.IsEmpty())
}

func TestPipelineOrderIsIndependentOfResult(t *testing.T) {
	c := Criteria{
		Vegetarian:         boolPtr(true),
		IncludeIngredients: []uint{flour},
		ExcludeIngredients: []uint{sugar},
		Instruction:        "PAN",
	}
	pipeline := c.Pipeline()
	assert.Len(t, pipeline, 4)

	for _, r := range catalog() {
		forward := true
		for _, p := range pipeline {
			forward = forward && p(r)
		}
		backward := true
		for i := len(pipeline) - 1; i >= 0; i-- {
			backward = backward && pipeline[i](r)
		}
		assert.Equal(t, forward, backward, r.Name)
		assert.Equal(t, forward, c.Matches(r), r.Name)
	}
}

func TestInstructionFoldsUnicode(t *testing.T) {
	r := recipe(1, "Crème", true, 2, "Faire CUIRE à feu doux, ÉTAPE finale", flour)
	assert.True(t, InstructionContains("étape").Matches(r))
	assert.True(t, InstructionContains("cuire").Matches(r))
	assert.False(t, InstructionContains("griller").Matches(r))
}

func TestCriteriaDoesNotAliasCallerSlices(t *testing.T) {
	include := []uint{sugar}
	c := Criteria{IncludeIngredients: include}
	pipeline := c.Pipeline()
	include[0] = chicken

	assert.True(t, pipeline[0](catalog()[0]))
}

func boolPtr(v bool) *bool {
	return &v
}
