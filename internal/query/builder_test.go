package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() ListParams {
	return ListParams{Page: 1, Limit: 50, SortBy: "id", SortOrder: "desc"}
}

func TestBuildListNoFilters(t *testing.T) {
	q := BuildList(Filters{}, defaultParams())

	assert.NotContains(t, q.DataSQL, "WHERE")
	assert.Contains(t, q.DataSQL, "ORDER BY id DESC")
	assert.Contains(t, q.DataSQL, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{50, 0}, q.DataArgs)

	assert.Equal(t, "SELECT COUNT(*) FROM electric_cars", q.CountSQL)
	assert.Empty(t, q.CountArgs)
}

func TestBuildListSearch(t *testing.T) {
	p := defaultParams()
	p.Search = "  bmw "
	q := BuildList(Filters{}, p)

	assert.Contains(t, q.DataSQL,
		"(brand ILIKE $1 OR model ILIKE $1 OR power_train ILIKE $1 OR segment ILIKE $1 OR body_style ILIKE $1)")
	assert.Equal(t, "%bmw%", q.DataArgs[0])
	assert.Contains(t, q.CountSQL, "brand ILIKE $1")
}

func TestBuildListPriceRange(t *testing.T) {
	filters := Filters{
		"price_euro_min": {Type: OpGreaterThan, Value: "30000"},
		"price_euro_max": {Type: OpLessThan, Value: "50000"},
	}
	q := BuildList(filters, defaultParams())

	assert.Contains(t, q.DataSQL, "price_euro >= $1")
	assert.Contains(t, q.DataSQL, "price_euro <= $2")
	assert.Equal(t, 30000.0, q.DataArgs[0])
	assert.Equal(t, 50000.0, q.DataArgs[1])

	// The price entries must not also be processed by the generic loop.
	assert.Contains(t, q.DataSQL, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{30000.0, 50000.0}, q.CountArgs)
}

func TestBuildListOperators(t *testing.T) {
	cases := []struct {
		name     string
		filter   Filter
		wantCond string
		wantArg  any
	}{
		{"contains", Filter{OpContains, "X3"}, "brand::text ILIKE $1", "%X3%"},
		{"equals", Filter{OpEquals, "BMW"}, "brand = $1", "BMW"},
		{"startsWith", Filter{OpStartsWith, "Te"}, "brand::text ILIKE $1", "Te%"},
		{"endsWith", Filter{OpEndsWith, "sla"}, "brand::text ILIKE $1", "%sla"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := BuildList(Filters{"brand": tc.filter}, defaultParams())
			assert.Contains(t, q.DataSQL, tc.wantCond)
			assert.Equal(t, tc.wantArg, q.DataArgs[0])
		})
	}
}

func TestBuildListIsEmpty(t *testing.T) {
	q := BuildList(Filters{"date": {Type: OpIsEmpty}}, defaultParams())

	assert.Contains(t, q.DataSQL, "(date IS NULL OR date::text = '')")
	// No bound parameter beyond limit/offset.
	assert.Equal(t, []any{50, 0}, q.DataArgs)
	assert.Empty(t, q.CountArgs)
}

func TestBuildListNumericOperators(t *testing.T) {
	q := BuildList(Filters{"range_km": {Type: OpGreaterThan, Value: "300"}}, defaultParams())
	assert.Contains(t, q.DataSQL, "range_km >= $1")
	assert.Equal(t, 300.0, q.DataArgs[0])

	q = BuildList(Filters{"range_km": {Type: OpLessThan, Value: "500"}}, defaultParams())
	assert.Contains(t, q.DataSQL, "range_km <= $1")
}

func TestBuildListDropsNonNumericComparison(t *testing.T) {
	q := BuildList(Filters{"range_km": {Type: OpGreaterThan, Value: "far"}}, defaultParams())

	assert.NotContains(t, q.DataSQL, "WHERE")
	assert.Equal(t, []any{50, 0}, q.DataArgs)
}

func TestBuildListUnknownColumnFallsBack(t *testing.T) {
	q := BuildList(Filters{"secret; DROP TABLE": {Type: OpEquals, Value: "1"}}, defaultParams())

	assert.Contains(t, q.DataSQL, "id = $1")
	assert.NotContains(t, q.DataSQL, "DROP TABLE")
}

func TestBuildListSorting(t *testing.T) {
	p := defaultParams()
	p.SortBy = "brand"
	p.SortOrder = "asc"
	q := BuildList(Filters{}, p)
	assert.Contains(t, q.DataSQL, "ORDER BY brand ASC, id DESC")

	// Anything other than asc normalizes to descending.
	p.SortOrder = "sideways"
	q = BuildList(Filters{}, p)
	assert.Contains(t, q.DataSQL, "ORDER BY brand DESC, id DESC")

	// Unknown sort columns fall back to the identifier.
	p.SortBy = "nope"
	q = BuildList(Filters{}, p)
	assert.Contains(t, q.DataSQL, "ORDER BY id DESC")
}

func TestBuildListPagination(t *testing.T) {
	p := defaultParams()
	p.Page = 3
	p.Limit = 20
	q := BuildList(Filters{}, p)

	require.Len(t, q.DataArgs, 2)
	assert.Equal(t, 20, q.DataArgs[0])
	assert.Equal(t, 40, q.DataArgs[1])
}

func TestBuildListCountSharesPredicate(t *testing.T) {
	p := defaultParams()
	p.Search = "suv"
	filters := Filters{
		"brand":          {Type: OpEquals, Value: "BMW"},
		"price_euro_max": {Type: OpLessThan, Value: "60000"},
	}
	q := BuildList(filters, p)

	// Count carries the same predicate args, minus limit and offset.
	require.Len(t, q.DataArgs, len(q.CountArgs)+2)
	assert.Equal(t, q.DataArgs[:len(q.CountArgs)], q.CountArgs)
	assert.NotContains(t, q.CountSQL, "ORDER BY")
	assert.NotContains(t, q.CountSQL, "LIMIT")
}

func TestBuildListDeterministicOrder(t *testing.T) {
	filters := Filters{
		"segment":    {Type: OpEquals, Value: "C"},
		"brand":      {Type: OpEquals, Value: "BMW"},
		"body_style": {Type: OpEquals, Value: "SUV"},
	}

	first := BuildList(filters, defaultParams())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.DataSQL, BuildList(filters, defaultParams()).DataSQL)
		assert.Equal(t, first.DataArgs, BuildList(filters, defaultParams()).DataArgs)
	}
}
