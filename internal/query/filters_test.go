package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFilters(t *testing.T) {
	values := url.Values{
		"brand_filter_type":    {"equals"},
		"brand_filter_value":   {"BMW"},
		"segment_filter_type":  {"contains"},
		"segment_filter_value": {"C"},
		"search":               {"ignored"},
	}

	filters := ExtractFilters(values)

	assert.Len(t, filters, 2)
	assert.Equal(t, Filter{Type: "equals", Value: "BMW"}, filters["brand"])
	assert.Equal(t, Filter{Type: "contains", Value: "C"}, filters["segment"])
}

func TestExtractFiltersMissingValue(t *testing.T) {
	values := url.Values{"brand_filter_type": {"equals"}}

	// A type without a value is dropped, unless the operator is isEmpty.
	assert.Empty(t, ExtractFilters(values))

	values = url.Values{"date_filter_type": {"isEmpty"}}
	filters := ExtractFilters(values)
	assert.Equal(t, Filter{Type: "isEmpty"}, filters["date"])
}

func TestExtractFiltersPricePassthrough(t *testing.T) {
	values := url.Values{
		"price_euro_min_filter_type":  {"greaterThan"},
		"price_euro_min_filter_value": {"30000"},
	}

	filters := ExtractFilters(values)
	assert.Equal(t, Filter{Type: "greaterThan", Value: "30000"}, filters["price_euro_min"])
}

func TestMinPriceAliases(t *testing.T) {
	for _, alias := range []string{"price_euro_min", "price_min", "price_euro"} {
		filters := Filters{alias: {Type: "greaterThan", Value: "30000"}}
		v, ok := filters.MinPrice()
		assert.True(t, ok, alias)
		assert.Equal(t, 30000.0, v, alias)
	}
}

func TestMaxPriceAliases(t *testing.T) {
	for _, alias := range []string{"price_euro_max", "price_max"} {
		filters := Filters{alias: {Type: "lessThan", Value: "50000"}}
		v, ok := filters.MaxPrice()
		assert.True(t, ok, alias)
		assert.Equal(t, 50000.0, v, alias)
	}
}

func TestPriceBoundsRejectNonNumeric(t *testing.T) {
	filters := Filters{
		"price_euro_min": {Type: "greaterThan", Value: "cheap"},
		"price_euro_max": {Type: "lessThan", Value: ""},
	}

	_, ok := filters.MinPrice()
	assert.False(t, ok)
	_, ok = filters.MaxPrice()
	assert.False(t, ok)
}
