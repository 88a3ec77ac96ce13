package model

import "time"

// Vehicle is one row of the electric_cars table. Nullable columns map to
// pointers so absent CSV values survive the round trip as JSON null.
type Vehicle struct {
	ID             int       `json:"id"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	AccelSec       *float64  `json:"accel_sec"`
	TopSpeedKmH    *int      `json:"top_speed_kmh"`
	RangeKm        *int      `json:"range_km"`
	EfficiencyWhKm *int      `json:"efficiency_whkm"`
	FastChargeKmH  *string   `json:"fast_charge_kmh"`
	RapidCharge    *string   `json:"rapid_charge"`
	PowerTrain     string    `json:"power_train"`
	PlugType       string    `json:"plug_type"`
	BodyStyle      string    `json:"body_style"`
	Segment        string    `json:"segment"`
	Seats          *int      `json:"seats"`
	PriceEuro      *int      `json:"price_euro"`
	Date           *string   `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PriceRange holds slider-friendly price bounds rounded to the nearest thousand.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SchemaField describes one user-facing column of the vehicle table.
type SchemaField struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
}
