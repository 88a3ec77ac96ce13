package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter is one column constraint extracted from paired query parameters.
type Filter struct {
	Type  string
	Value string
}

// Filters maps a column name to its constraint.
type Filters map[string]Filter

// Aliases under which the price slider submits its bounds. The generic
// filter loop skips all of them so the range is not applied twice.
var (
	minPriceAliases = []string{"price_euro_min", "price_min", "price_euro"}
	maxPriceAliases = []string{"price_euro_max", "price_max"}
)

// ExtractFilters collects <col>_filter_type / <col>_filter_value pairs from
// raw query parameters. An entry is kept when a value is present, or
// unconditionally for the isEmpty operator, which takes no value.
func ExtractFilters(values url.Values) Filters {
	filters := Filters{}

	for key := range values {
		if !strings.HasSuffix(key, "_filter_type") {
			continue
		}
		column := strings.TrimSuffix(key, "_filter_type")
		filterType := values.Get(key)
		_, hasValue := values[column+"_filter_value"]

		if hasValue || filterType == OpIsEmpty {
			filters[column] = Filter{
				Type:  filterType,
				Value: values.Get(column + "_filter_value"),
			}
		}
	}

	return filters
}

// MinPrice returns the numeric minimum-price bound, honoring every alias the
// slider component has historically used. Non-numeric values are ignored.
func (f Filters) MinPrice() (float64, bool) {
	return f.priceBound(minPriceAliases)
}

// MaxPrice returns the numeric maximum-price bound.
func (f Filters) MaxPrice() (float64, bool) {
	return f.priceBound(maxPriceAliases)
}

func (f Filters) priceBound(aliases []string) (float64, bool) {
	for _, alias := range aliases {
		entry, ok := f[alias]
		if !ok || entry.Value == "" {
			continue
		}
		if v, err := strconv.ParseFloat(entry.Value, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// isPriceKey reports whether column belongs to the dedicated price-range
// handling and must be excluded from generic filter processing.
func isPriceKey(column string) bool {
	return strings.Contains(column, "price_euro") || column == "price_min" || column == "price_max"
}
