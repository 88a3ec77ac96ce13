package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the electric_cars table and its indexes if they do
// not exist yet.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = 'electric_cars'
		)
	`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if electric_cars table exists: %w", err)
	}

	if exists {
		return nil
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS electric_cars (
			id SERIAL PRIMARY KEY,
			brand VARCHAR(100) NOT NULL,
			model VARCHAR(150) NOT NULL,
			accel_sec NUMERIC(4,2),
			top_speed_kmh INTEGER,
			range_km INTEGER,
			efficiency_whkm INTEGER,
			fast_charge_kmh VARCHAR(50),
			rapid_charge VARCHAR(50),
			power_train VARCHAR(100),
			plug_type VARCHAR(50),
			body_style VARCHAR(50),
			segment VARCHAR(50),
			seats INTEGER,
			price_euro INTEGER,
			date VARCHAR(20),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create electric_cars table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_cars_brand ON electric_cars (brand)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_model ON electric_cars (model)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_segment ON electric_cars (segment)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_price ON electric_cars (price_euro)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_range ON electric_cars (range_km)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_brand_model ON electric_cars (brand, model)`,
	}
	for _, stmt := range indexes {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
