package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// selectColumns is the projection for vehicle rows; the repository scans in
// this exact order.
const selectColumns = `id, brand, model, accel_sec, top_speed_kmh, range_km, efficiency_whkm,
		fast_charge_kmh, rapid_charge, power_train, plug_type, body_style, segment,
		seats, price_euro, date, created_at, updated_at`

// Columns the free-text search matches against, case-insensitively.
var searchColumns = []string{"brand", "model", "power_train", "segment", "body_style"}

// ListQuery is a fully parameterized data query plus the count query that
// shares its predicate but carries no ordering or pagination.
type ListQuery struct {
	DataSQL   string
	DataArgs  []any
	CountSQL  string
	CountArgs []any
}

// BuildList translates filters, search and pagination into SQL. Columns only
// ever enter the statement after passing through the allow-list, so user
// input is confined to bound parameters.
func BuildList(filters Filters, p ListParams) ListQuery {
	var conds []string
	var args []any

	if term := strings.TrimSpace(p.Search); term != "" {
		args = append(args, "%"+term+"%")
		ph := placeholder(len(args))
		parts := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			parts[i] = fmt.Sprintf("%s ILIKE %s", col, ph)
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}

	// Price range is handled up front and excluded from the generic loop
	// below so the bounds are never applied twice.
	if v, ok := filters.MinPrice(); ok {
		args = append(args, v)
		conds = append(conds, "price_euro >= "+placeholder(len(args)))
	}
	if v, ok := filters.MaxPrice(); ok {
		args = append(args, v)
		conds = append(conds, "price_euro <= "+placeholder(len(args)))
	}

	for _, column := range sortedColumns(filters) {
		if isPriceKey(column) {
			continue
		}
		entry := filters[column]
		if entry.Value == "" && entry.Type != OpIsEmpty {
			continue
		}
		if cond, condArgs, ok := buildCondition(Resolve(column), entry, len(args)); ok {
			conds = append(conds, cond)
			args = append(args, condArgs...)
		}
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	sortCol := Resolve(p.SortBy)
	direction := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		direction = "ASC"
	}
	order := fmt.Sprintf(" ORDER BY %s %s", sortCol, direction)
	if sortCol != fallbackColumn {
		// Identifier tiebreak keeps ordering reproducible across pages.
		order += ", id DESC"
	}

	countArgs := args
	dataArgs := append(args[:len(args):len(args)], p.Limit, (p.Page-1)*p.Limit)
	dataSQL := fmt.Sprintf("SELECT %s\n\tFROM electric_cars%s%s LIMIT %s OFFSET %s",
		selectColumns, where, order, placeholder(len(args)+1), placeholder(len(args)+2))

	return ListQuery{
		DataSQL:   dataSQL,
		DataArgs:  dataArgs,
		CountSQL:  "SELECT COUNT(*) FROM electric_cars" + where,
		CountArgs: countArgs,
	}
}

// buildCondition renders one filter entry as a predicate. Numeric operators
// silently drop non-numeric values instead of failing the whole request.
func buildCondition(column string, f Filter, argOffset int) (string, []any, bool) {
	next := placeholder(argOffset + 1)

	switch f.Type {
	case OpContains:
		return fmt.Sprintf("%s::text ILIKE %s", column, next), []any{"%" + f.Value + "%"}, true
	case OpEquals:
		return fmt.Sprintf("%s = %s", column, next), []any{f.Value}, true
	case OpStartsWith:
		return fmt.Sprintf("%s::text ILIKE %s", column, next), []any{f.Value + "%"}, true
	case OpEndsWith:
		return fmt.Sprintf("%s::text ILIKE %s", column, next), []any{"%" + f.Value}, true
	case OpIsEmpty:
		return fmt.Sprintf("(%s IS NULL OR %s::text = '')", column, column), nil, true
	case OpGreaterThan:
		// Inclusive; the operator name is historical.
		if v, err := strconv.ParseFloat(f.Value, 64); err == nil {
			return fmt.Sprintf("%s >= %s", column, next), []any{v}, true
		}
		return "", nil, false
	case OpLessThan:
		if v, err := strconv.ParseFloat(f.Value, 64); err == nil {
			return fmt.Sprintf("%s <= %s", column, next), []any{v}, true
		}
		return "", nil, false
	default:
		return "", nil, false
	}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// sortedColumns fixes the predicate order so generated SQL is deterministic.
func sortedColumns(filters Filters) []string {
	cols := make([]string, 0, len(filters))
	for col := range filters {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
