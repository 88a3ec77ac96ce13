package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ev-catalog-api/internal/model"
	"ev-catalog-api/internal/query"
)

// FilterHandler serves the dropdown/slider helper endpoints.
type FilterHandler struct {
	store VehicleStore
}

func NewFilterHandler(store VehicleStore) *FilterHandler {
	return &FilterHandler{store: store}
}

// Values handles GET /api/filters/{column}/values. Unlike sorting, an
// unknown column here is rejected outright rather than falling back to id.
func (h *FilterHandler) Values(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	column := chi.URLParam(r, "column")
	if !query.IsBaseColumn(column) {
		writeError(w, http.StatusBadRequest, "Invalid column for filtering")
		return
	}

	values, err := h.store.DistinctValues(ctx, column)
	if err != nil {
		logFailure(r, "getFilterValues", start, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve filter values")
		return
	}
	if values == nil {
		values = []any{}
	}

	logRequest(r, "getFilterValues", start, "column", column, "values", len(values))
	writeJSON(w, http.StatusOK, model.DataResponse{Success: true, Data: values})
}

// PriceRange handles GET /api/filters/price/range.
func (h *FilterHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	bounds, err := h.store.PriceRange(ctx)
	if err != nil {
		logFailure(r, "getPriceRange", start, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve price range")
		return
	}

	logRequest(r, "getPriceRange", start, "min", bounds.Min, "max", bounds.Max)
	writeJSON(w, http.StatusOK, model.DataResponse{Success: true, Data: bounds})
}
