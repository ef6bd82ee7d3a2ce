// Package dataset reads and writes the tabular car files the pipeline
// consumes and produces.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartcar/advisor/internal/domain"
)

// columnAliases maps normalized source headers to canonical field names.
// Source variants are not consistent: the raw 2025 dataset uses marketing
// headers ("Company Names", "CC/Battery Capacity"), while a re-ingested
// canonical table uses the field names themselves. Headers are lower-cased
// with underscores folded to spaces before lookup.
var columnAliases = map[string]string{
	"company names":             "brand",
	"cars names":                "name",
	"engines":                   "engine",
	"cc/battery capacity":       "capacity",
	"horsepower":                "horsepower",
	"total speed":               "topspeed",
	"performance(0 - 100 )km/h": "acceleration",
	"cars prices":               "price",
	"fuel types":                "fuel",
	"seats":                     "seats",
	"torque":                    "torque",
	"brand":                     "brand",
	"name":                      "name",
	"engine":                    "engine",
	"capacity":                  "capacity",
	"topspeed":                  "topspeed",
	"acceleration":              "acceleration",
	"price":                     "price",
	"fuel":                      "fuel",
	"transmission":              "transmission",
	"purpose":                   "purpose",
	"rating":                    "rating",
}

// requiredColumns must be present after aliasing or the batch aborts.
var requiredColumns = []string{"brand", "name", "price"}

// Reader ingests a CSV table into raw records.
type Reader struct {
	logger zerolog.Logger
}

var _ domain.RawSource = (*Reader)(nil)

// NewReader creates a Reader with the given logger.
func NewReader(logger zerolog.Logger) *Reader {
	return &Reader{logger: logger}
}

// Read loads every row of the CSV at path. Unknown columns are ignored;
// missing required columns abort with a clear error. Ragged rows are
// tolerated since the source data is hand-maintained.
func (r *Reader) Read(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoDataset, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	index, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var records []domain.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		records = append(records, domain.RawRecord{
			Brand:        field(row, index, "brand"),
			Name:         field(row, index, "name"),
			Engine:       field(row, index, "engine"),
			Capacity:     field(row, index, "capacity"),
			Horsepower:   field(row, index, "horsepower"),
			TopSpeed:     field(row, index, "topspeed"),
			Acceleration: field(row, index, "acceleration"),
			Price:        field(row, index, "price"),
			Fuel:         field(row, index, "fuel"),
			Seats:        field(row, index, "seats"),
			Torque:       field(row, index, "torque"),
			Transmission: field(row, index, "transmission"),
			Rating:       field(row, index, "rating"),
		})
	}

	r.logger.Info().Str("path", path).Int("rows", len(records)).Msg("dataset loaded")
	return records, nil
}

// mapHeader aliases source headers to canonical names and verifies the
// required columns are all present.
func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		key := normalizeHeader(col)
		canonical, ok := columnAliases[key]
		if !ok {
			continue
		}
		if _, taken := index[canonical]; !taken {
			index[canonical] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col)
		}
	}
	return index, nil
}

func normalizeHeader(col string) string {
	col = strings.ToLower(strings.TrimSpace(col))
	col = strings.ReplaceAll(col, "_", " ")
	return strings.Join(strings.Fields(col), " ")
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
