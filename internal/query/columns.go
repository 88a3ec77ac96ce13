package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Supported filter operators.
const (
	OpContains    = "contains"
	OpEquals      = "equals"
	OpStartsWith  = "startsWith"
	OpEndsWith    = "endsWith"
	OpIsEmpty     = "isEmpty"
	OpGreaterThan = "greaterThan"
	OpLessThan    = "lessThan"
)

// FilterTypes lists every operator accepted in *_filter_type parameters.
var FilterTypes = []string{
	OpContains,
	OpEquals,
	OpStartsWith,
	OpEndsWith,
	OpIsEmpty,
	OpGreaterThan,
	OpLessThan,
}

// BaseColumns is the allow-list of electric_cars columns permitted in
// filter, sort and distinct-value operations.
var BaseColumns = []string{
	"id",
	"brand",
	"model",
	"accel_sec",
	"top_speed_kmh",
	"range_km",
	"efficiency_whkm",
	"fast_charge_kmh",
	"rapid_charge",
	"power_train",
	"plug_type",
	"body_style",
	"segment",
	"seats",
	"price_euro",
	"date",
	"created_at",
	"updated_at",
}

// fallbackColumn is substituted for any column that is not allow-listed,
// so an unrecognized name can never reach the generated SQL.
const fallbackColumn = "id"

var displayNames = map[string]string{
	"brand":           "Brand",
	"model":           "Model",
	"accel_sec":       "Acceleration (0-100)",
	"top_speed_kmh":   "Top Speed (km/h)",
	"range_km":        "Range (km)",
	"efficiency_whkm": "Efficiency (Wh/km)",
	"fast_charge_kmh": "Fast Charge Rate",
	"rapid_charge":    "Rapid Charge",
	"power_train":     "Powertrain",
	"plug_type":       "Plug Type",
	"body_style":      "Body Style",
	"segment":         "Segment",
	"seats":           "Seats",
	"price_euro":      "Price (€)",
	"date":            "Date",
}

var titleCaser = cases.Title(language.English)

// IsBaseColumn reports whether col is allow-listed as-is.
func IsBaseColumn(col string) bool {
	for _, c := range BaseColumns {
		if c == col {
			return true
		}
	}
	return false
}

// IsFilterType reports whether t is a supported filter operator.
func IsFilterType(t string) bool {
	for _, ft := range FilterTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// IsFilterable reports whether col is a base column or one of its
// _min/_max range variants.
func IsFilterable(col string) bool {
	for _, base := range BaseColumns {
		if col == base || strings.HasPrefix(col, base+"_min") || strings.HasPrefix(col, base+"_max") {
			return true
		}
	}
	return false
}

// Resolve maps col to a safe column name, falling back to the identifier
// column for anything outside the allow-list.
func Resolve(col string) string {
	if IsBaseColumn(col) {
		return col
	}
	return fallbackColumn
}

// DisplayName returns the human-readable label for a field. Unknown fields
// get a generic underscore-to-space, title-cased label.
func DisplayName(field string) string {
	if name, ok := displayNames[field]; ok {
		return name
	}
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}
