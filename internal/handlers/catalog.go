package handlers

import (
	"net/http"

	applog "recipeapp/internal/log"
	"recipeapp/internal/views/pages"
)

// Catalog renders the HTML recipe catalog, filtered by the same query
// parameters as the search endpoint.
func Catalog(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if recipes == nil || ingredients == nil {
		serviceUnavailable(w, r, "catalog")
		return
	}

	ctx := r.Context()
	view := pages.CatalogView{Form: searchForm(r.URL.Query())}
	status := http.StatusOK

	criteria, err := CriteriaFromRequest(r)
	if err == nil {
		view.Recipes, err = recipes.Search(ctx, criteria)
	}
	if err != nil {
		status = statusFor(err)
		view.Error = err.Error()
		if status == http.StatusInternalServerError {
			applog.Error(ctx, "failed to load catalog recipes", "error", err)
			view.Error = "unable to load recipes"
		}
	}

	view.Ingredients, err = ingredients.List(ctx)
	if err != nil {
		applog.Error(ctx, "failed to load catalog ingredients", "error", err)
		status = http.StatusInternalServerError
		view.Error = "unable to load ingredients"
	}

	component := pages.Catalog(view)
	if isHTMX(r) {
		component = pages.CatalogResults(view)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "HX-Request")
	w.WriteHeader(status)
	if err := component.Render(ctx, w); err != nil {
		applog.Error(ctx, "failed to render catalog", "error", err)
	}
}

// isHTMX reports whether the request was issued by htmx and expects a fragment.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}
