package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig carries the HTTP-level knobs the router wires in.
type RouterConfig struct {
	CORSOrigin     string
	RequestTimeout time.Duration
	RateLimiter    *RateLimiter
}

// NewRouter assembles the full route table. Every unmatched path or method
// answers with the JSON 404 envelope instead of chi's plain-text default.
func NewRouter(
	vehicles *VehicleHandler,
	filters *FilterHandler,
	schema *SchemaHandler,
	health *HealthHandler,
	cfg RouterConfig,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.CORSOrigin != "" {
		r.Use(CORS(cfg.CORSOrigin))
	}

	notFound := func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/health", health.Check)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Middleware)
		}
		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)

		r.Get("/data", vehicles.List)
		r.Get("/data/{id}", vehicles.GetByID)
		r.Delete("/data/{id}", vehicles.Delete)

		r.Get("/filters/{column}/values", filters.Values)
		r.Get("/filters/price/range", filters.PriceRange)

		r.Get("/schema", schema.Schema)
		r.Get("/health", health.Check)
		r.Get("/docs", Docs)
	})

	return r
}
