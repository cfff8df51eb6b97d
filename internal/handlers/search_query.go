package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"recipeapp/internal/domain"
	"recipeapp/internal/search"
	"recipeapp/internal/views/components"
)

// CriteriaFromRequest extracts search criteria from the query string. Id
// lists may be repeated (?includeIngredient=1&includeIngredient=2) or comma
// separated (?includeIngredient=1,2). Unparsable values are a bad request.
func CriteriaFromRequest(r *http.Request) (search.Criteria, error) {
	return criteriaFromValues(r.URL.Query())
}

func criteriaFromValues(values url.Values) (search.Criteria, error) {
	criteria := search.Criteria{}

	if raw := strings.TrimSpace(values.Get("vegetarian")); raw != "" {
		vegetarian, err := strconv.ParseBool(raw)
		if err != nil {
			return search.Criteria{}, domain.BadRequestf("vegetarian must be true or false, got %q", raw)
		}
		criteria.Vegetarian = &vegetarian
	}

	if raw := strings.TrimSpace(values.Get("servings")); raw != "" {
		servings, err := strconv.Atoi(raw)
		if err != nil {
			return search.Criteria{}, domain.BadRequestf("servings must be an integer, got %q", raw)
		}
		criteria.Servings = &servings
	}

	include, err := idList(values, "includeIngredient", "includeIngredients")
	if err != nil {
		return search.Criteria{}, err
	}
	criteria.IncludeIngredients = include

	exclude, err := idList(values, "excludeIngredient", "excludeIngredients")
	if err != nil {
		return search.Criteria{}, err
	}
	criteria.ExcludeIngredients = exclude

	criteria.Instruction = strings.TrimSpace(values.Get("instruction"))
	return criteria, nil
}

func idList(values url.Values, keys ...string) ([]uint, error) {
	var ids []uint
	for _, key := range keys {
		for _, raw := range values[key] {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, err := strconv.ParseUint(part, 10, 64)
				if err != nil {
					return nil, domain.BadRequestf("%s must list ingredient ids, got %q", key, part)
				}
				ids = append(ids, uint(id))
			}
		}
	}
	return ids, nil
}

// searchForm echoes the raw query values back into the catalog form.
func searchForm(values url.Values) components.SearchForm {
	return components.SearchForm{
		Vegetarian:  strings.TrimSpace(values.Get("vegetarian")),
		Servings:    strings.TrimSpace(values.Get("servings")),
		Include:     joinValues(values, "includeIngredient", "includeIngredients"),
		Exclude:     joinValues(values, "excludeIngredient", "excludeIngredients"),
		Instruction: strings.TrimSpace(values.Get("instruction")),
		Theme:       strings.TrimSpace(values.Get("theme")),
	}
}

func joinValues(values url.Values, keys ...string) string {
	var parts []string
	for _, key := range keys {
		for _, raw := range values[key] {
			if raw = strings.TrimSpace(raw); raw != "" {
				parts = append(parts, raw)
			}
		}
	}
	return strings.Join(parts, ",")
}

func parsePathInt(segment, field string) (int, error) {
	value, err := strconv.Atoi(segment)
	if err != nil {
		return 0, domain.BadRequestf("%s must be an integer, got %q", field, segment)
	}
	return value, nil
}

func describeCriteria(c search.Criteria) string {
	var parts []string
	if c.Vegetarian != nil {
		parts = append(parts, fmt.Sprintf("vegetarian=%t", *c.Vegetarian))
	}
	if c.Servings != nil {
		parts = append(parts, fmt.Sprintf("servings=%d", *c.Servings))
	}
	if len(c.IncludeIngredients) > 0 {
		parts = append(parts, fmt.Sprintf("include=%v", c.IncludeIngredients))
	}
	if len(c.ExcludeIngredients) > 0 {
		parts = append(parts, fmt.Sprintf("exclude=%v", c.ExcludeIngredients))
	}
	if c.Instruction != "" {
		parts = append(parts, fmt.Sprintf("instruction=%q", c.Instruction))
	}
	return strings.Join(parts, " ")
}
