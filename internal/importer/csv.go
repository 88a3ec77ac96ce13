package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Importer performs the one-time CSV bootstrap of the electric_cars table.
// It is a no-op when the table already holds data or when the CSV file is
// missing, so restarts never duplicate rows.
type Importer struct {
	db   *pgxpool.Pool
	path string
}

func New(db *pgxpool.Pool, path string) *Importer {
	return &Importer{db: db, path: path}
}

const insertSQL = `
	INSERT INTO electric_cars
		(brand, model, accel_sec, top_speed_kmh, range_km, efficiency_whkm,
		fast_charge_kmh, rapid_charge, power_train, plug_type, body_style,
		segment, seats, price_euro, date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

// Run imports the seed CSV and reports whether any rows were inserted.
// Individual row failures are logged and skipped; the import continues.
func (i *Importer) Run(ctx context.Context) (bool, error) {
	var count int
	if err := i.db.QueryRow(ctx, `SELECT COUNT(*) FROM electric_cars`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		slog.Info("data already present, skipping CSV import", "rows", count)
		return false, nil
	}

	f, err := os.Open(i.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("CSV file not found, skipping import", "path", i.path)
			return false, nil
		}
		return false, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return false, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		slog.Info("no rows found in CSV", "path", i.path)
		return false, nil
	}

	slog.Info("importing vehicles from CSV", "path", i.path, "rows", len(records))

	inserted, skipped := 0, 0
	for n, rec := range records {
		if _, err := i.db.Exec(ctx, insertSQL, vehicleArgs(rec)...); err != nil {
			skipped++
			slog.Warn("skipped CSV row", "row", n+1, "error", err)
			continue
		}
		inserted++
	}

	slog.Info("CSV import finished", "inserted", inserted, "skipped", skipped)
	return inserted > 0, nil
}

// parse reads header-keyed records with all field names and values trimmed.
func parse(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []map[string]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// vehicleArgs maps a CSV record onto the insert statement's parameters.
func vehicleArgs(rec map[string]string) []any {
	return []any{
		rec["Brand"],
		rec["Model"],
		parseDecimal(rec["AccelSec"]),
		parseNumber(rec["TopSpeed_KmH"]),
		parseNumber(rec["Range_Km"]),
		parseNumber(rec["Efficiency_WhKm"]),
		rec["FastCharge_KmH"],
		rec["RapidCharge"],
		rec["PowerTrain"],
		rec["PlugType"],
		rec["BodyStyle"],
		rec["Segment"],
		parseNumber(rec["Seats"]),
		parseNumber(rec["PriceEuro"]),
		rec["Date"],
	}
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// parseNumber coerces a free-form numeric field to an integer. Empty values,
// "N/A" and unparseable input all map to NULL rather than an error.
func parseNumber(s string) *int {
	f := parseDecimal(s)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// parseDecimal strips everything but digits, dots and minus signs before
// parsing, so values like "€45,000" survive.
func parseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return nil
	}
	f, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(s, ""), 64)
	if err != nil {
		return nil
	}
	return &f
}
