package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ev-catalog-api/internal/model"
	"ev-catalog-api/internal/query"
)

// VehicleRepo executes catalog queries against the electric_cars table.
// It only reads and deletes; rows are created exclusively by the bootstrap
// importer.
type VehicleRepo struct {
	db *pgxpool.Pool
}

func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// List returns the vehicles matching the filter set, sorted and sliced per
// params, along with pagination metadata computed from the unsliced total.
func (r *VehicleRepo) List(ctx context.Context, filters query.Filters, params query.ListParams) ([]model.Vehicle, model.Pagination, error) {
	q := query.BuildList(filters, params)

	var total int
	if err := r.db.QueryRow(ctx, q.CountSQL, q.CountArgs...).Scan(&total); err != nil {
		return nil, model.Pagination{}, fmt.Errorf("count query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, q.DataSQL, q.DataArgs...)
	if err != nil {
		return nil, model.Pagination{}, fmt.Errorf("data query failed: %w", err)
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, model.Pagination{}, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, model.Pagination{}, err
	}

	pagination := model.Pagination{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: (total + params.Limit - 1) / params.Limit,
	}
	return vehicles, pagination, nil
}

// GetByID fetches a single vehicle. A missing row returns (nil, nil).
func (r *VehicleRepo) GetByID(ctx context.Context, id int) (*model.Vehicle, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, brand, model, accel_sec, top_speed_kmh, range_km, efficiency_whkm,
			fast_charge_kmh, rapid_charge, power_train, plug_type, body_style, segment,
			seats, price_euro, date, created_at, updated_at
		FROM electric_cars
		WHERE id = $1
	`, id)

	var v model.Vehicle
	if err := scanVehicle(row, &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// Delete removes one vehicle and reports whether a row actually existed.
func (r *VehicleRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM electric_cars WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DistinctValues returns up to 100 distinct non-null, non-empty values of a
// column in ascending order, for filter dropdowns. The column is resolved
// through the allow-list before it reaches the statement.
func (r *VehicleRepo) DistinctValues(ctx context.Context, column string) ([]any, error) {
	col := query.Resolve(column)

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT DISTINCT %s FROM electric_cars
		WHERE %s IS NOT NULL AND %s::text <> ''
		ORDER BY %s ASC
		LIMIT 100
	`, col, col, col, col))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []any
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// PriceRange computes slider bounds: minimum price floored and maximum price
// ceiled to the nearest thousand. An empty table yields 0..100000.
func (r *VehicleRepo) PriceRange(ctx context.Context) (model.PriceRange, error) {
	var min, max *int
	err := r.db.QueryRow(ctx, `
		SELECT MIN(price_euro), MAX(price_euro)
		FROM electric_cars
		WHERE price_euro IS NOT NULL
	`).Scan(&min, &max)
	if err != nil {
		return model.PriceRange{}, err
	}

	bounds := model.PriceRange{Min: 0, Max: 100000}
	if min != nil {
		bounds.Min = *min / 1000 * 1000
	}
	if max != nil {
		bounds.Max = (*max + 999) / 1000 * 1000
	}
	return bounds, nil
}

// Schema introspects the vehicle table and classifies each user-facing
// column as numeric or textual, with a display name attached.
func (r *VehicleRepo) Schema(ctx context.Context) ([]model.SchemaField, error) {
	rows, err := r.db.Query(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = 'electric_cars'
		ORDER BY ordinal_position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []model.SchemaField
	for rows.Next() {
		var name, dataType string
		if err := rows.Scan(&name, &dataType); err != nil {
			return nil, err
		}
		if name == "id" || name == "created_at" || name == "updated_at" {
			continue
		}
		fields = append(fields, model.SchemaField{
			Field:       name,
			Type:        fieldType(dataType),
			DisplayName: query.DisplayName(name),
		})
	}
	return fields, rows.Err()
}

// HealthStatus returns the row count and whether any data is present.
func (r *VehicleRepo) HealthStatus(ctx context.Context) (int, bool, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM electric_cars`).Scan(&count); err != nil {
		return 0, false, err
	}
	return count, count > 0, nil
}

func fieldType(dataType string) string {
	if strings.Contains(dataType, "int") || strings.Contains(dataType, "numeric") || strings.Contains(dataType, "decimal") {
		return "number"
	}
	return "text"
}

func scanVehicle(row pgx.Row, v *model.Vehicle) error {
	return row.Scan(
		&v.ID, &v.Brand, &v.Model, &v.AccelSec, &v.TopSpeedKmH, &v.RangeKm,
		&v.EfficiencyWhKm, &v.FastChargeKmH, &v.RapidCharge, &v.PowerTrain,
		&v.PlugType, &v.BodyStyle, &v.Segment, &v.Seats, &v.PriceEuro,
		&v.Date, &v.CreatedAt, &v.UpdatedAt,
	)
}
