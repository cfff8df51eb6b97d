package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"recipeapp/internal/domain"
	applog "recipeapp/internal/log"
	"recipeapp/internal/search"
)

const recipesPath = "/api/v1/recipes"

type recipeIngredientPayload struct {
	ID             uint    `json:"id,omitempty"`
	IngredientID   uint    `json:"ingredientId"`
	IngredientName string  `json:"ingredientName,omitempty"`
	Amount         float64 `json:"amount"`
	Unit           string  `json:"unit"`
}

type recipeFieldsPayload struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	IsVegetarian bool   `json:"isVegetarian"`
	Servings     int    `json:"servings"`
}

type createRecipeRequest struct {
	Recipe            recipeFieldsPayload       `json:"recipe"`
	RecipeIngredients []recipeIngredientPayload `json:"recipeIngredients"`
}

type updateRecipeRequest struct {
	ID uint `json:"id,omitempty"`
	recipeFieldsPayload
	Ingredients []recipeIngredientPayload `json:"ingredients"`
}

type recipeResponse struct {
	ID           uint                      `json:"id"`
	Name         string                    `json:"name"`
	Instructions string                    `json:"instructions"`
	IsVegetarian bool                      `json:"isVegetarian"`
	Servings     int                       `json:"servings"`
	Ingredients  []recipeIngredientPayload `json:"ingredients"`
}

func (p recipeFieldsPayload) fields() domain.RecipeFields {
	return domain.RecipeFields{
		Name:         p.Name,
		Instructions: p.Instructions,
		Vegetarian:   p.IsVegetarian,
		Servings:     p.Servings,
	}
}

func ingredientLines(payload []recipeIngredientPayload) []domain.IngredientLine {
	lines := make([]domain.IngredientLine, 0, len(payload))
	for _, p := range payload {
		lines = append(lines, domain.IngredientLine{
			IngredientID: p.IngredientID,
			Amount:       p.Amount,
			Unit:         p.Unit,
		})
	}
	return lines
}

func projectRecipe(recipe domain.Recipe) recipeResponse {
	response := recipeResponse{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Instructions: recipe.Instructions,
		IsVegetarian: recipe.Vegetarian,
		Servings:     recipe.Servings,
		Ingredients:  make([]recipeIngredientPayload, 0, len(recipe.Ingredients)),
	}
	for _, ri := range recipe.Ingredients {
		response.Ingredients = append(response.Ingredients, recipeIngredientPayload{
			ID:             ri.ID,
			IngredientID:   ri.IngredientID,
			IngredientName: ri.IngredientName,
			Amount:         ri.Amount,
			Unit:           ri.Unit,
		})
	}
	return response
}

func projectRecipes(all []domain.Recipe) []recipeResponse {
	responses := make([]recipeResponse, 0, len(all))
	for _, recipe := range all {
		responses = append(responses, projectRecipe(recipe))
	}
	return responses
}

// RecipeResource handles CRUD and lookup interactions for recipes.
func RecipeResource(w http.ResponseWriter, r *http.Request) {
	if recipes == nil {
		serviceUnavailable(w, r, "recipe")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, recipesPath)
	path = strings.Trim(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			listRecipes(w, r)
		case http.MethodPost:
			createRecipe(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if idValue, err := strconv.ParseUint(path, 10, 64); err == nil {
		recipeID := uint(idValue)
		switch r.Method {
		case http.MethodGet:
			showRecipe(w, r, recipeID)
		case http.MethodPut:
			updateRecipe(w, r, recipeID)
		case http.MethodDelete:
			deleteRecipe(w, r, recipeID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	head, rest, _ := strings.Cut(path, "/")
	switch head {
	case "name":
		showRecipeByName(w, r, rest)
	case "vegetarian":
		searchRecipes(w, r, search.Vegetarian(true))
	case "non-vegetarian":
		searchRecipes(w, r, search.Vegetarian(false))
	case "servings":
		servings, err := parsePathInt(rest, "servings")
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		searchRecipes(w, r, search.Servings(servings))
	case "instruction":
		searchRecipes(w, r, search.InstructionContains(rest))
	case "search":
		criteria, err := CriteriaFromRequest(r)
		if err != nil {
			applog.Debug(r.Context(), "invalid recipe search", "query", r.URL.RawQuery, "error", err)
			writeDomainError(w, r, err)
			return
		}
		searchRecipes(w, r, criteria)
	default:
		applog.Debug(r.Context(), "unknown recipe route", "path", path)
		http.NotFound(w, r)
	}
}

func listRecipes(w http.ResponseWriter, r *http.Request) {
	all, err := recipes.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectRecipes(all))
}

func searchRecipes(w http.ResponseWriter, r *http.Request, criteria search.Criteria) {
	applog.Debug(r.Context(), "searching recipes", "criteria", describeCriteria(criteria))
	matched, err := recipes.Search(r.Context(), criteria)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectRecipes(matched))
}

func showRecipe(w http.ResponseWriter, r *http.Request, id uint) {
	recipe, err := recipes.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectRecipe(recipe))
}

func showRecipeByName(w http.ResponseWriter, r *http.Request, name string) {
	if strings.TrimSpace(name) == "" {
		http.NotFound(w, r)
		return
	}
	recipe, err := recipes.GetByName(r.Context(), name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectRecipe(recipe))
}

func createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var payload createRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid recipe create payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	recipe, err := recipes.Add(ctx, payload.Recipe.fields(), ingredientLines(payload.RecipeIngredients))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectRecipe(recipe))
}

func updateRecipe(w http.ResponseWriter, r *http.Request, id uint) {
	ctx := r.Context()
	var payload updateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid recipe update payload", "error", err, "id", id)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.ID != 0 && payload.ID != id {
		writeJSONError(w, http.StatusBadRequest, "recipe id in body does not match path")
		return
	}

	recipe, err := recipes.Update(ctx, id, payload.fields(), ingredientLines(payload.Ingredients))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectRecipe(recipe))
}

func deleteRecipe(w http.ResponseWriter, r *http.Request, id uint) {
	if err := recipes.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
