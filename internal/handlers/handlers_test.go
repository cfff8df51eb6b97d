package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeapp/internal/db/mock"
	"recipeapp/internal/repository"
	"recipeapp/internal/service"
)

// withCatalog installs services over a fresh in-memory database. Tests using
// it mutate package state and must not run in parallel.
func withCatalog(t *testing.T) {
	t.Helper()
	database, err := mock.Open(context.Background())
	require.NoError(t, err)

	store := repository.New(database)
	originalIngredients, originalRecipes := ingredients, recipes
	Configure(service.NewIngredientService(store), service.NewRecipeService(store))
	t.Cleanup(func() {
		ingredients, recipes = originalIngredients, originalRecipes
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func do(t *testing.T, handler http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func createIngredients(t *testing.T, names ...string) []ingredientResponse {
	t.Helper()
	out := make([]ingredientResponse, 0, len(names))
	for _, name := range names {
		rr := do(t, IngredientResource, http.MethodPost, ingredientsPath, ingredientRequest{Name: name})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		out = append(out, decode[ingredientResponse](t, rr))
	}
	return out
}

func TestIngredientResourceCRUD(t *testing.T) {
	withCatalog(t)

	created := createIngredients(t, "Flour", "Sugar")
	assert.Equal(t, "Flour", created[0].Name)

	rr := do(t, IngredientResource, http.MethodPost, ingredientsPath, ingredientRequest{Name: "Flour"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, IngredientResource, http.MethodPost, ingredientsPath, ingredientRequest{Name: " "})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = do(t, IngredientResource, http.MethodPost, ingredientsPath, "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, IngredientResource, http.MethodGet, ingredientsPath, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]ingredientResponse](t, rr), 2)

	rr = do(t, IngredientResource, http.MethodGet, ingredientsPath+"/name/Sugar", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created[1].ID, decode[ingredientResponse](t, rr).ID)

	target := ingredientsPath + "/" + itoa(created[1].ID)
	rr = do(t, IngredientResource, http.MethodPut, target, ingredientRequest{Name: "Caster Sugar"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Caster Sugar", decode[ingredientResponse](t, rr).Name)

	rr = do(t, IngredientResource, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, IngredientResource, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decode[map[string]string](t, rr)["error"], "not found")

	rr = do(t, IngredientResource, http.MethodGet, ingredientsPath+"/abc", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, IngredientResource, http.MethodPatch, ingredientsPath, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func createCake(t *testing.T, in []ingredientResponse) recipeResponse {
	t.Helper()
	body := createRecipeRequest{
		Recipe: recipeFieldsPayload{Name: "Cake", Instructions: "Mix and bake in the oven", IsVegetarian: true, Servings: 4},
	}
	for i, ingredient := range in {
		body.RecipeIngredients = append(body.RecipeIngredients, recipeIngredientPayload{
			IngredientID: ingredient.ID,
			Amount:       float64(100 * (i + 1)),
			Unit:         "g",
		})
	}
	rr := do(t, RecipeResource, http.MethodPost, recipesPath, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[recipeResponse](t, rr)
}

func TestRecipeResourceCreateAndRead(t *testing.T) {
	withCatalog(t)
	in := createIngredients(t, "Flour", "Sugar", "Eggs")

	cake := createCake(t, in)
	assert.Equal(t, "Cake", cake.Name)
	assert.True(t, cake.IsVegetarian)
	require.Len(t, cake.Ingredients, 3)
	assert.Equal(t, "Sugar", cake.Ingredients[1].IngredientName)

	rr := do(t, RecipeResource, http.MethodGet, recipesPath+"/"+itoa(cake.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, cake, decode[recipeResponse](t, rr))

	rr = do(t, RecipeResource, http.MethodGet, recipesPath+"/name/Cake", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, cake.ID, decode[recipeResponse](t, rr).ID)

	rr = do(t, RecipeResource, http.MethodGet, recipesPath+"/name/Pie", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, RecipeResource, http.MethodGet, recipesPath, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]recipeResponse](t, rr), 1)
}

func TestRecipeResourceErrorStatuses(t *testing.T) {
	withCatalog(t)
	in := createIngredients(t, "Flour")
	line := []recipeIngredientPayload{{IngredientID: in[0].ID, Amount: 1, Unit: "g"}}

	cases := []struct {
		name string
		body any
		want int
	}{
		{"malformed json", `{"recipe":`, http.StatusBadRequest},
		{"zero servings", createRecipeRequest{Recipe: recipeFieldsPayload{Name: "Cake"}, RecipeIngredients: line}, http.StatusBadRequest},
		{"no ingredients", createRecipeRequest{Recipe: recipeFieldsPayload{Name: "Cake", Servings: 2}}, http.StatusUnprocessableEntity},
		{"blank name", createRecipeRequest{Recipe: recipeFieldsPayload{Servings: 2}, RecipeIngredients: line}, http.StatusUnprocessableEntity},
		{
			"unknown ingredient",
			createRecipeRequest{
				Recipe:            recipeFieldsPayload{Name: "Cake", Servings: 2},
				RecipeIngredients: []recipeIngredientPayload{{IngredientID: 404, Amount: 1, Unit: "g"}},
			},
			http.StatusNotFound,
		},
	}

	for _, tt := range cases {
		rr := do(t, RecipeResource, http.MethodPost, recipesPath, tt.body)
		assert.Equal(t, tt.want, rr.Code, tt.name)
	}

	rr := do(t, RecipeResource, http.MethodGet, recipesPath, nil)
	assert.Empty(t, decode[[]recipeResponse](t, rr))
}

func TestRecipeResourceUpdateReplacesIngredients(t *testing.T) {
	withCatalog(t)
	in := createIngredients(t, "Flour", "Sugar", "Milk")
	cake := createCake(t, in[:2])

	body := updateRecipeRequest{
		recipeFieldsPayload: recipeFieldsPayload{Name: "Crepes", Instructions: "Fry thinly", IsVegetarian: true, Servings: 2},
		Ingredients: []recipeIngredientPayload{
			{IngredientID: in[2].ID, Amount: 300, Unit: "ml"},
			{IngredientID: in[0].ID, Amount: 120, Unit: "g"},
		},
	}
	target := recipesPath + "/" + itoa(cake.ID)
	rr := do(t, RecipeResource, http.MethodPut, target, body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	updated := decode[recipeResponse](t, rr)
	assert.Equal(t, "Crepes", updated.Name)
	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, in[2].ID, updated.Ingredients[0].IngredientID)
	assert.Equal(t, in[0].ID, updated.Ingredients[1].IngredientID)

	body.ID = cake.ID + 1
	rr = do(t, RecipeResource, http.MethodPut, target, body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	body.ID = 0
	rr = do(t, RecipeResource, http.MethodPut, recipesPath+"/999", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, RecipeResource, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, RecipeResource, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRecipeResourceLookupRoutes(t *testing.T) {
	withCatalog(t)
	in := createIngredients(t, "Flour", "Eggs", "Chicken")

	post := func(name, instructions string, vegetarian bool, servings int, ids ...uint) {
		body := createRecipeRequest{Recipe: recipeFieldsPayload{Name: name, Instructions: instructions, IsVegetarian: vegetarian, Servings: servings}}
		for _, id := range ids {
			body.RecipeIngredients = append(body.RecipeIngredients, recipeIngredientPayload{IngredientID: id, Amount: 1, Unit: "g"})
		}
		rr := do(t, RecipeResource, http.MethodPost, recipesPath, body)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}
	post("Cake", "Bake in the OVEN", true, 4, in[0].ID, in[1].ID)
	post("Roast", "Roast in the oven", false, 4, in[2].ID)
	post("Flatbread", "Fry in a pan", true, 2, in[0].ID)

	names := func(target string) []string {
		rr := do(t, RecipeResource, http.MethodGet, target, nil)
		require.Equal(t, http.StatusOK, rr.Code, target)
		out := []string{}
		for _, r := range decode[[]recipeResponse](t, rr) {
			out = append(out, r.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Cake", "Flatbread"}, names(recipesPath+"/vegetarian"))
	assert.Equal(t, []string{"Roast"}, names(recipesPath+"/non-vegetarian"))
	assert.Equal(t, []string{"Cake", "Roast"}, names(recipesPath+"/servings/4"))
	assert.Equal(t, []string{"Cake", "Roast"}, names(recipesPath+"/instruction/oven"))
	assert.Equal(t, []string{"Cake", "Roast", "Flatbread"}, names(recipesPath+"/search"))
	assert.Equal(t, []string{"Cake"}, names(recipesPath+"/search?vegetarian=true&servings=4&instruction=oven"))
	assert.Equal(t, []string{"Flatbread"}, names(recipesPath+"/search?includeIngredient="+itoa(in[0].ID)+"&excludeIngredient="+itoa(in[1].ID)))
	assert.Equal(t, []string{"Cake"}, names(recipesPath+"/search?includeIngredient="+itoa(in[0].ID)+","+itoa(in[1].ID)))

	for _, target := range []string{
		recipesPath + "/servings/four",
		recipesPath + "/search?servings=many",
		recipesPath + "/search?vegetarian=maybe",
		recipesPath + "/search?includeIngredient=1,x",
	} {
		rr := do(t, RecipeResource, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}

	rr := do(t, RecipeResource, http.MethodGet, recipesPath+"/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResourcesWithoutServices(t *testing.T) {
	originalIngredients, originalRecipes := ingredients, recipes
	Configure(nil, nil)
	t.Cleanup(func() {
		ingredients, recipes = originalIngredients, originalRecipes
	})

	for _, handler := range []http.HandlerFunc{IngredientResource, RecipeResource, Catalog} {
		rr := do(t, handler, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	}
}

func TestCatalogPage(t *testing.T) {
	withCatalog(t)
	in := createIngredients(t, "Flour")
	createCake(t, in)

	rr := do(t, Catalog, http.MethodGet, "/?vegetarian=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Cake")
	assert.Contains(t, rr.Body.String(), "100 g Flour")

	rr = do(t, Catalog, http.MethodGet, "/?vegetarian=false", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No recipes match.")

	rr = do(t, Catalog, http.MethodGet, "/?servings=lots", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `role="alert"`))

	rr = do(t, Catalog, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCatalogServesFragmentToHTMX(t *testing.T) {
	withCatalog(t)
	in := createIngredients(t, "Flour")
	createCake(t, in)

	req := httptest.NewRequest(http.MethodGet, "/?vegetarian=true", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	Catalog(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "HX-Request", rr.Header().Get("Vary"))
	assert.Contains(t, rr.Body.String(), "Cake")
	assert.NotContains(t, rr.Body.String(), "<html")
	assert.NotContains(t, rr.Body.String(), "<aside>")
}

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, isHTMX(req))

	req.Header.Set("HX-Request", "true")
	assert.True(t, isHTMX(req))

	req.Header.Set("HX-Boosted", "true")
	assert.False(t, isHTMX(req), "boosted navigation expects a full page")
}
