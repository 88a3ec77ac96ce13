package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

// ListParams is the normalized pagination/sort tuple for a list request.
type ListParams struct {
	Search    string `schema:"search"`
	Page      int    `schema:"page"`
	Limit     int    `schema:"limit"`
	SortBy    string `schema:"sortBy"`
	SortOrder string `schema:"sortOrder"`
}

const (
	defaultLimit    = 50
	maxLimit        = 100
	maxSearchLength = 100
)

var paramDecoder = newParamDecoder()

func newParamDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// ParseListParams decodes and validates pagination/sort parameters,
// applying defaults and capping the page size. The first violation is
// returned as an error suitable for a 400 response.
func ParseListParams(values url.Values) (ListParams, error) {
	p := ListParams{
		Page:      1,
		Limit:     defaultLimit,
		SortBy:    fallbackColumn,
		SortOrder: "desc",
	}

	if err := paramDecoder.Decode(&p, values); err != nil {
		return p, fmt.Errorf("invalid query parameters: %w", err)
	}

	if len(p.Search) > maxSearchLength {
		return p, fmt.Errorf("search must be at most %d characters", maxSearchLength)
	}
	if p.Page < 1 {
		return p, errors.New("page must be a positive integer")
	}
	if p.Limit < 1 {
		return p, errors.New("limit must be a positive integer")
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if !IsBaseColumn(p.SortBy) {
		return p, fmt.Errorf("sortBy must be one of: %s", strings.Join(BaseColumns, ", "))
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		return p, errors.New(`sortOrder must be "asc" or "desc"`)
	}

	return p, nil
}

// ParseID validates a path identifier: a positive decimal integer.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid ID format")
	}
	return id, nil
}

// ValidateFilters scans every *_filter_type parameter and collects
// human-readable problems: unknown operators, columns outside the
// allow-list, and missing values for operators that require one.
// Callers decide whether to warn or reject.
func ValidateFilters(values url.Values) []string {
	var problems []string

	for key := range values {
		if !strings.HasSuffix(key, "_filter_type") {
			continue
		}
		filterType := values.Get(key)
		column := strings.TrimSuffix(key, "_filter_type")

		if !IsFilterType(filterType) {
			problems = append(problems, fmt.Sprintf("invalid filter type %q for column %q", filterType, column))
		}
		if !IsFilterable(column) {
			problems = append(problems, fmt.Sprintf("column %q is not filterable", column))
		}
		if _, ok := values[column+"_filter_value"]; !ok && filterType != OpIsEmpty {
			problems = append(problems, fmt.Sprintf("missing filter value for column %q", column))
		}
	}

	return problems
}
