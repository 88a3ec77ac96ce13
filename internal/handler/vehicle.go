package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"ev-catalog-api/internal/model"
	"ev-catalog-api/internal/query"
)

// VehicleHandler serves the list/detail/delete endpoints.
type VehicleHandler struct {
	store VehicleStore

	// strictFilters turns malformed filter parameters into a 400 instead
	// of a logged warning.
	strictFilters bool
}

func NewVehicleHandler(store VehicleStore, strictFilters bool) *VehicleHandler {
	return &VehicleHandler{store: store, strictFilters: strictFilters}
}

// List handles GET /api/data: search, dynamic filters, sorting, pagination.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	params, err := query.ParseListParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if problems := query.ValidateFilters(r.URL.Query()); len(problems) > 0 {
		if h.strictFilters {
			writeError(w, http.StatusBadRequest, strings.Join(problems, "; "))
			return
		}
		slog.Warn("filter validation problems", "problems", problems)
	}

	filters := query.ExtractFilters(r.URL.Query())

	vehicles, pagination, err := h.store.List(ctx, filters, params)
	if err != nil {
		logFailure(r, "getAllData", start, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}

	logRequest(r, "getAllData", start,
		"records", len(vehicles),
		"total", pagination.Total,
		"page", pagination.Page,
		"filters", len(filters),
		"search", params.Search != "",
	)

	writeJSON(w, http.StatusOK, model.ListResponse{
		Success:    true,
		Data:       vehicles,
		Pagination: pagination,
	})
}

// GetByID handles GET /api/data/{id}.
func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	id, err := query.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	car, err := h.store.GetByID(ctx, id)
	if err != nil {
		logFailure(r, "getDataById", start, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve car details")
		return
	}

	logRequest(r, "getDataById", start, "id", id, "found", car != nil)

	if car == nil {
		writeError(w, http.StatusNotFound, "Car not found")
		return
	}
	writeJSON(w, http.StatusOK, model.DataResponse{Success: true, Data: car})
}

// Delete handles DELETE /api/data/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	id, err := query.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	deleted, err := h.store.Delete(ctx, id)
	if err != nil {
		logFailure(r, "deleteData", start, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete car")
		return
	}

	logRequest(r, "deleteData", start, "id", id, "deleted", deleted)

	if !deleted {
		writeError(w, http.StatusNotFound, "Car not found")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Car deleted successfully",
	})
}
