// Package storage persists the canonical record set in SQLite for callers
// that want a queryable copy instead of (or alongside) the CSV output.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/smartcar/advisor/internal/domain"
)

// SQLiteStore persists cleaned car records to a SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

var (
	_ domain.CarSource = (*SQLiteStore)(nil)
	_ domain.CarSink   = (*SQLiteStore)(nil)
)

// NewSQLiteStore opens (or creates) the database at path and runs schema
// migrations.
func NewSQLiteStore(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS cars (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			brand        TEXT    NOT NULL,
			name         TEXT    NOT NULL,
			price        REAL    NOT NULL,
			horsepower   REAL    NOT NULL DEFAULT 0,
			acceleration REAL    NOT NULL DEFAULT 0,
			seats        INTEGER NOT NULL DEFAULT 4,
			fuel         TEXT    NOT NULL,
			transmission TEXT    NOT NULL,
			purpose      TEXT    NOT NULL,
			rating       INTEGER NOT NULL DEFAULT 0,
			UNIQUE (brand, name)
		);

		CREATE INDEX IF NOT EXISTS idx_cars_price ON cars(price);
		CREATE INDEX IF NOT EXISTS idx_cars_fuel  ON cars(fuel);
	`)
	return err
}

// Clear deletes all stored records.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM cars"); err != nil {
		return fmt.Errorf("sqlite: clear: %w", err)
	}
	return nil
}

// Write batch-inserts all records, clearing old data first so the table
// always mirrors the latest batch pass.
func (s *SQLiteStore) Write(cars []domain.CarRecord) error {
	if len(cars) == 0 {
		return nil
	}
	if err := s.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(cars); i += batchSize {
		end := i + batchSize
		if end > len(cars) {
			end = len(cars)
		}
		if err := s.insertBatch(cars[i:end]); err != nil {
			return err
		}
	}

	s.logger.Info().Int("records", len(cars)).Msg("canonical records stored")
	return nil
}

func (s *SQLiteStore) insertBatch(batch []domain.CarRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*10)

	for _, c := range batch {
		valueStrings = append(valueStrings, "(?,?,?,?,?,?,?,?,?,?)")
		valueArgs = append(valueArgs,
			c.Brand, c.Name, c.Price, c.Horsepower, c.Acceleration,
			c.Seats, c.Fuel, c.Transmission, c.Purpose, c.Rating)
	}

	query := fmt.Sprintf(`
		INSERT INTO cars (brand, name, price, horsepower, acceleration, seats, fuel, transmission, purpose, rating)
		VALUES %s
		ON CONFLICT (brand, name) DO NOTHING
	`, strings.Join(valueStrings, ","))

	if _, err := s.db.Exec(query, valueArgs...); err != nil {
		return fmt.Errorf("sqlite: insert batch: %w", err)
	}
	return nil
}

// LoadAll retrieves all stored records in insertion order.
func (s *SQLiteStore) LoadAll() ([]domain.CarRecord, error) {
	rows, err := s.db.Query(`
		SELECT brand, name, price, horsepower, acceleration, seats, fuel, transmission, purpose, rating
		FROM cars
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load: %w", err)
	}
	defer rows.Close()

	var cars []domain.CarRecord
	for rows.Next() {
		var c domain.CarRecord
		if err := rows.Scan(
			&c.Brand, &c.Name, &c.Price, &c.Horsepower, &c.Acceleration,
			&c.Seats, &c.Fuel, &c.Transmission, &c.Purpose, &c.Rating,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan row: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
