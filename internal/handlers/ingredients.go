package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"recipeapp/internal/domain"
	applog "recipeapp/internal/log"
)

const ingredientsPath = "/api/v1/ingredients"

type ingredientRequest struct {
	Name string `json:"name"`
}

type ingredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func projectIngredient(ingredient domain.Ingredient) ingredientResponse {
	return ingredientResponse{ID: ingredient.ID, Name: ingredient.Name}
}

// IngredientResource handles CRUD interactions for ingredients.
func IngredientResource(w http.ResponseWriter, r *http.Request) {
	if ingredients == nil {
		serviceUnavailable(w, r, "ingredient")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, ingredientsPath)
	path = strings.Trim(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			listIngredients(w, r)
		case http.MethodPost:
			createIngredient(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if name, ok := strings.CutPrefix(path, "name/"); ok {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		showIngredientByName(w, r, name)
		return
	}

	idValue, err := strconv.ParseUint(path, 10, 64)
	if err != nil {
		applog.Debug(r.Context(), "invalid ingredient identifier", "identifier", path, "error", err)
		http.NotFound(w, r)
		return
	}
	ingredientID := uint(idValue)

	switch r.Method {
	case http.MethodGet:
		showIngredient(w, r, ingredientID)
	case http.MethodPut:
		updateIngredient(w, r, ingredientID)
	case http.MethodDelete:
		deleteIngredient(w, r, ingredientID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func listIngredients(w http.ResponseWriter, r *http.Request) {
	all, err := ingredients.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	responses := make([]ingredientResponse, 0, len(all))
	for _, ingredient := range all {
		responses = append(responses, projectIngredient(ingredient))
	}
	writeJSON(w, http.StatusOK, responses)
}

func showIngredient(w http.ResponseWriter, r *http.Request, id uint) {
	ingredient, err := ingredients.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectIngredient(ingredient))
}

func showIngredientByName(w http.ResponseWriter, r *http.Request, name string) {
	ingredient, err := ingredients.GetByName(r.Context(), name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectIngredient(ingredient))
}

func createIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var payload ingredientRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid ingredient create payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	ingredient, err := ingredients.Add(ctx, payload.Name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectIngredient(ingredient))
}

func updateIngredient(w http.ResponseWriter, r *http.Request, id uint) {
	ctx := r.Context()
	var payload ingredientRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid ingredient update payload", "error", err, "id", id)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	ingredient, err := ingredients.Update(ctx, id, payload.Name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectIngredient(ingredient))
}

func deleteIngredient(w http.ResponseWriter, r *http.Request, id uint) {
	if err := ingredients.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
