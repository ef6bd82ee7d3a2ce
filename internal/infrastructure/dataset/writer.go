package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/smartcar/advisor/internal/domain"
)

// canonicalHeader is the fixed column order of the canonical table. It round
// trips through Reader unchanged, which keeps re-ingestion idempotent.
var canonicalHeader = []string{
	"brand", "name", "price", "horsepower", "acceleration",
	"seats", "fuel", "transmission", "purpose", "rating",
}

// Writer persists canonical records as a CSV file.
type Writer struct {
	file   *os.File
	writer *csv.Writer
}

var _ domain.CarSink = (*Writer)(nil)

// NewWriter creates (or truncates) the CSV file at path and writes the
// header row. Intermediate directories are created automatically.
func NewWriter(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(canonicalHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &Writer{file: f, writer: w}, nil
}

// Write appends one row per canonical record.
func (w *Writer) Write(cars []domain.CarRecord) error {
	for _, car := range cars {
		row := []string{
			car.Brand,
			car.Name,
			strconv.FormatFloat(car.Price, 'f', -1, 64),
			strconv.FormatFloat(car.Horsepower, 'f', -1, 64),
			strconv.FormatFloat(car.Acceleration, 'f', -1, 64),
			strconv.Itoa(car.Seats),
			car.Fuel,
			car.Transmission,
			car.Purpose,
			strconv.Itoa(car.Rating),
		}
		if err := w.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.writer.Flush()
	return w.file.Close()
}
