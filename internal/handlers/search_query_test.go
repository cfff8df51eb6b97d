package handlers

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeapp/internal/domain"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestCriteriaFromValues(t *testing.T) {
	values, err := url.ParseQuery("vegetarian=false&servings=3&includeIngredient=1,2&includeIngredient=5&excludeIngredients=9&instruction=+Bake+")
	require.NoError(t, err)

	criteria, err := criteriaFromValues(values)
	require.NoError(t, err)
	require.NotNil(t, criteria.Vegetarian)
	assert.False(t, *criteria.Vegetarian)
	require.NotNil(t, criteria.Servings)
	assert.Equal(t, 3, *criteria.Servings)
	assert.Equal(t, []uint{1, 2, 5}, criteria.IncludeIngredients)
	assert.Equal(t, []uint{9}, criteria.ExcludeIngredients)
	assert.Equal(t, "Bake", criteria.Instruction)
}

func TestCriteriaFromValuesEmpty(t *testing.T) {
	criteria, err := criteriaFromValues(url.Values{})
	require.NoError(t, err)
	assert.True(t, criteria.IsEmpty())
}

func TestCriteriaFromValuesRejectsGarbage(t *testing.T) {
	for _, query := range []string{"vegetarian=yes-please", "servings=2.5", "includeIngredient=-1", "excludeIngredient=a"} {
		values, err := url.ParseQuery(query)
		require.NoError(t, err)
		_, err = criteriaFromValues(values)
		assert.ErrorIs(t, err, domain.ErrBadRequest, query)
	}
}

func TestSearchFormEchoesQuery(t *testing.T) {
	values, err := url.ParseQuery("includeIngredient=1&includeIngredient=2&theme=larder&servings=4")
	require.NoError(t, err)

	form := searchForm(values)
	assert.Equal(t, "1,2", form.Include)
	assert.Equal(t, "4", form.Servings)
	assert.Equal(t, "larder", form.Theme)
}
