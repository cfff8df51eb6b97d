// Package search filters recipes by a conjunction of optional criteria.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"recipeapp/internal/domain"
)

// Criteria holds the optional predicates of a recipe search. A nil pointer,
// an empty id list or an empty instruction imposes no constraint.
type Criteria struct {
	// Vegetarian must equal the recipe's flag.
	Vegetarian *bool
	// Servings must equal the recipe's servings exactly.
	Servings *int
	// IncludeIngredients must all be present among the recipe's associations.
	IncludeIngredients []uint
	// ExcludeIngredients must all be absent from the recipe's associations.
	ExcludeIngredients []uint
	// Instruction must occur in the recipe's instructions, ignoring case.
	Instruction string
}

// Vegetarian returns criteria matching recipes with the given flag.
func Vegetarian(v bool) Criteria {
	return Criteria{Vegetarian: &v}
}

// Servings returns criteria matching recipes serving exactly n.
func Servings(n int) Criteria {
	return Criteria{Servings: &n}
}

// InstructionContains returns criteria matching recipes whose instructions
// contain text.
func InstructionContains(text string) Criteria {
	return Criteria{Instruction: text}
}

// IsEmpty reports whether c constrains nothing.
func (c Criteria) IsEmpty() bool {
	return c.Vegetarian == nil &&
		c.Servings == nil &&
		len(c.IncludeIngredients) == 0 &&
		len(c.ExcludeIngredients) == 0 &&
		c.Instruction == ""
}

// Predicate reports whether a recipe satisfies one criterion.
type Predicate func(domain.Recipe) bool

// Pipeline returns the predicates for the supplied criteria in a fixed order:
// vegetarian, servings, include, exclude, instruction. Absent criteria
// contribute no predicate.
func (c Criteria) Pipeline() []Predicate {
	pipeline := make([]Predicate, 0, 5)

	if c.Vegetarian != nil {
		want := *c.Vegetarian
		pipeline = append(pipeline, func(r domain.Recipe) bool {
			return r.Vegetarian == want
		})
	}

	if c.Servings != nil {
		want := *c.Servings
		pipeline = append(pipeline, func(r domain.Recipe) bool {
			return r.Servings == want
		})
	}

	if len(c.IncludeIngredients) > 0 {
		include := append([]uint(nil), c.IncludeIngredients...)
		pipeline = append(pipeline, func(r domain.Recipe) bool {
			present := ingredientSet(r)
			for _, id := range include {
				if _, ok := present[id]; !ok {
					return false
				}
			}
			return true
		})
	}

	if len(c.ExcludeIngredients) > 0 {
		exclude := append([]uint(nil), c.ExcludeIngredients...)
		pipeline = append(pipeline, func(r domain.Recipe) bool {
			present := ingredientSet(r)
			for _, id := range exclude {
				if _, ok := present[id]; ok {
					return false
				}
			}
			return true
		})
	}

	if c.Instruction != "" {
		// cases.Caser is stateful, so each predicate gets its own.
		needle := cases.Fold().String(c.Instruction)
		pipeline = append(pipeline, func(r domain.Recipe) bool {
			return strings.Contains(cases.Fold().String(r.Instructions), needle)
		})
	}

	return pipeline
}

// Matches reports whether r satisfies every supplied criterion.
func (c Criteria) Matches(r domain.Recipe) bool {
	for _, p := range c.Pipeline() {
		if !p(r) {
			return false
		}
	}
	return true
}

// Filter returns the recipes satisfying every supplied criterion, preserving
// input order. Empty criteria return all recipes.
func Filter(recipes []domain.Recipe, c Criteria) []domain.Recipe {
	pipeline := c.Pipeline()
	matched := make([]domain.Recipe, 0, len(recipes))
recipes:
	for _, r := range recipes {
		for _, p := range pipeline {
			if !p(r) {
				continue recipes
			}
		}
		matched = append(matched, r)
	}
	return matched
}

func ingredientSet(r domain.Recipe) map[uint]struct{} {
	set := make(map[uint]struct{}, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		set[ri.IngredientID] = struct{}{}
	}
	return set
}
