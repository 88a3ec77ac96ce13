package handler

import (
	"context"

	"ev-catalog-api/internal/model"
	"ev-catalog-api/internal/query"
)

// VehicleStore is the data-access surface the handlers depend on.
// *repository.VehicleRepo satisfies it; tests substitute a mock.
type VehicleStore interface {
	List(ctx context.Context, filters query.Filters, params query.ListParams) ([]model.Vehicle, model.Pagination, error)
	GetByID(ctx context.Context, id int) (*model.Vehicle, error)
	Delete(ctx context.Context, id int) (bool, error)
	DistinctValues(ctx context.Context, column string) ([]any, error)
	PriceRange(ctx context.Context) (model.PriceRange, error)
	Schema(ctx context.Context) ([]model.SchemaField, error)
	HealthStatus(ctx context.Context) (int, bool, error)
}
