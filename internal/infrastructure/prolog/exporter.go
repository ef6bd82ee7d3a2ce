// Package prolog serializes the canonical record set as symbolic facts for
// an external knowledge base. It is a pass-through encoding of already
// cleaned records, not a decision-making component.
package prolog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartcar/advisor/internal/domain"
)

// exportedRatingDefault is written for records whose source had no rating.
const exportedRatingDefault = 4

// Exporter writes one fact per canonical record in the fixed predicate shape
// car(name, brand(B), price(P), fuel(F), transmission(T), seats(S),
// purpose(U), rating(R)).
type Exporter struct {
	logger zerolog.Logger
}

// NewExporter creates an Exporter with the given logger.
func NewExporter(logger zerolog.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Export writes the fact file at path, creating directories as needed.
func (e *Exporter) Export(path string, cars []domain.CarRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("prolog: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("prolog: create file %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "% =========================================")
	fmt.Fprintln(w, "%  Auto-generated Prolog facts from the canonical car table")
	fmt.Fprintln(w, "% =========================================")
	fmt.Fprintln(w)

	for _, car := range cars {
		fmt.Fprintln(w, Fact(car))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prolog: flush: %w", err)
	}

	e.logger.Info().Str("path", path).Int("facts", len(cars)).Msg("prolog facts exported")
	return nil
}

// Fact renders one record as a Prolog fact. All string fields are reduced to
// safe atoms and numeric fields are truncated to integers.
func Fact(car domain.CarRecord) string {
	rating := car.Rating
	if rating == 0 {
		rating = exportedRatingDefault
	}
	return fmt.Sprintf("car('%s', brand(%s), price(%d), fuel(%s), transmission(%s), seats(%d), purpose(%s), rating(%d)).",
		atom(car.Name), atom(car.Brand), int(car.Price), atom(car.Fuel),
		atom(car.Transmission), car.Seats, atom(car.Purpose), rating)
}

// atom lower-cases, replaces spaces with underscores, and strips every
// character that is not alphanumeric or underscore, so the output never needs
// quoting beyond the fixed template.
func atom(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
