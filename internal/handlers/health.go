package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	applog "recipeapp/internal/log"
)

type healthResponse struct {
	Status  string    `json:"status"`
	Catalog string    `json:"catalog"`
	Time    time.Time `json:"time"`
}

// Health is a readiness handler suitable for infrastructure health checks. It
// reports 503 until the catalog services are configured.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	resp := healthResponse{
		Status:  "ok",
		Catalog: "ready",
		Time:    time.Now().UTC(),
	}
	status := http.StatusOK
	if ingredients == nil || recipes == nil {
		resp.Status = "unavailable"
		resp.Catalog = "not configured"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		return
	}
	applog.Debug(r.Context(), "health check responded", "status", resp.Status)
}
