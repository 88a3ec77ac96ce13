package handler

import (
	"net/http"
	"time"

	"ev-catalog-api/internal/model"
	"ev-catalog-api/internal/query"
)

// SchemaHandler serves table metadata for dynamic column configuration.
type SchemaHandler struct {
	store VehicleStore
}

func NewSchemaHandler(store VehicleStore) *SchemaHandler {
	return &SchemaHandler{store: store}
}

// Schema handles GET /api/schema.
func (h *SchemaHandler) Schema(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	fields, err := h.store.Schema(ctx)
	if err != nil {
		logFailure(r, "getSchema", start, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve schema")
		return
	}
	if fields == nil {
		fields = []model.SchemaField{}
	}

	logRequest(r, "getSchema", start, "fields", len(fields))
	writeJSON(w, http.StatusOK, model.DataResponse{Success: true, Data: fields})
}

// Docs handles GET /api/docs with a static endpoint catalog.
func Docs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.DocsResponse{
		Title:   "Electric Cars Catalog API",
		Version: "1.0.0",
		Endpoints: []string{
			"GET /api/data - List cars with filtering, search, pagination",
			"GET /api/data/{id} - Get car by ID",
			"DELETE /api/data/{id} - Delete car by ID",
			"GET /api/filters/{column}/values - Get distinct values for dropdown filters",
			"GET /api/filters/price/range - Get price range for slider",
			"GET /api/schema - Get database schema",
			"GET /api/health - Health check",
		},
		FilterColumns: []string{"brand", "model", "segment", "body_style", "price_euro", "range_km", "seats"},
		FilterTypes:   query.FilterTypes,
		Example:       "/api/data?brand_filter_type=equals&brand_filter_value=BMW&search=electric",
	})
}
