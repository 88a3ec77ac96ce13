package handler

import (
	"net/http"
	"time"

	"ev-catalog-api/internal/model"
)

// HealthHandler reports service and store health.
type HealthHandler struct {
	store VehicleStore
}

func NewHealthHandler(store VehicleStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health and GET /api/health: 200 when the store
// answers, 503 when it does not.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	count, hasData, err := h.store.HealthStatus(ctx)
	if err != nil {
		logFailure(r, "healthCheck", start, err)
		writeJSON(w, http.StatusServiceUnavailable, model.HealthResponse{
			Success:   false,
			Status:    "unhealthy",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	database := "empty"
	if hasData {
		database = "has data"
	}

	logRequest(r, "healthCheck", start, "count", count)
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Success:   true,
		Status:    "healthy",
		Database:  database,
		Count:     count,
		Timestamp: time.Now().UTC(),
	})
}
