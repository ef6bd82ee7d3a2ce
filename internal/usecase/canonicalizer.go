package usecase

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartcar/advisor/internal/domain"
)

// CleanStats reports what happened to a batch: every input row is accounted
// for as cleaned, duplicate, or rejected.
type CleanStats struct {
	Total      int `json:"total"`
	Cleaned    int `json:"cleaned"`
	Duplicates int `json:"duplicates"`
	Rejected   int `json:"rejected"` // unknown or non-positive price
	Degraded   int `json:"degraded"` // kept records where a field fell back to a default
}

// CanonicalizerConfig holds configuration for the canonicalizer.
type CanonicalizerConfig struct {
	InferenceSeed      int64
	EnableDebugLogging bool
}

// Canonicalizer turns raw rows into the canonical record set: it runs every
// field through the normalizer, infers transmission where absent, derives
// purpose, drops duplicate (brand, name) pairs keeping the first occurrence,
// and drops records without a positive price. Output preserves insertion
// order and is deterministic for a fixed inference seed.
type Canonicalizer struct {
	inferencer         *TransmissionInferencer
	logger             zerolog.Logger
	enableDebugLogging bool
}

// NewCanonicalizer creates a canonicalizer with its own seeded inferencer.
func NewCanonicalizer(cfg CanonicalizerConfig, logger zerolog.Logger) *Canonicalizer {
	return &Canonicalizer{
		inferencer:         NewTransmissionInferencer(cfg.InferenceSeed),
		logger:             logger,
		enableDebugLogging: cfg.EnableDebugLogging,
	}
}

// Canonicalize processes a batch of raw rows. onRecord, when non-nil, is
// invoked once per input row so callers can drive a progress display.
// Individual field failures degrade to defaults and never abort the batch.
func (c *Canonicalizer) Canonicalize(raw []domain.RawRecord, onRecord func()) ([]domain.CarRecord, CleanStats) {
	stats := CleanStats{Total: len(raw)}
	seen := make(map[string]struct{}, len(raw))
	cars := make([]domain.CarRecord, 0, len(raw))

	for _, r := range raw {
		if onRecord != nil {
			onRecord()
		}

		brand := normalizeText(r.Brand)
		name := normalizeText(r.Name)
		key := brand + "\x00" + name
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			if c.enableDebugLogging {
				c.logger.Debug().Str("brand", brand).Str("name", name).Msg("duplicate record skipped")
			}
			continue
		}
		seen[key] = struct{}{}

		price, ok := ParsePrice(r.Price)
		if !ok || price <= 0 {
			stats.Rejected++
			if c.enableDebugLogging {
				c.logger.Debug().Str("brand", brand).Str("name", name).Str("raw_price", r.Price).Msg("record rejected: no usable price")
			}
			continue
		}

		horsepower, hpOK := ParseHorsepower(r.Horsepower)
		acceleration, accOK := ParseAcceleration(r.Acceleration)
		seats := ParseSeats(r.Seats)
		fuel := NormalizeFuel(r.Fuel)
		if !hpOK || !accOK {
			stats.Degraded++
		}

		transmission := strings.TrimSpace(strings.ToLower(r.Transmission))
		if transmission == "" {
			transmission = c.inferencer.Infer(brand, fuel, horsepower, seats)
		}

		rating := parseRating(r.Rating)

		cars = append(cars, domain.CarRecord{
			Brand:        brand,
			Name:         name,
			Price:        price,
			Horsepower:   horsepower,
			Acceleration: acceleration,
			Seats:        seats,
			Fuel:         fuel,
			Transmission: transmission,
			Purpose:      domain.DerivePurpose(horsepower, seats),
			Rating:       rating,
		})
	}

	stats.Cleaned = len(cars)
	c.logger.Info().
		Int("total", stats.Total).
		Int("cleaned", stats.Cleaned).
		Int("duplicates", stats.Duplicates).
		Int("rejected", stats.Rejected).
		Int("degraded", stats.Degraded).
		Msg("canonicalization complete")

	return cars, stats
}

// parseRating reads an existing rating column, clamped to [1,5]. Zero means
// the source had none; the scorer substitutes its default at query time.
func parseRating(raw string) int {
	match := integerRegex.FindString(raw)
	if match == "" {
		return 0
	}
	rating, err := strconv.Atoi(match)
	if err != nil || rating < 1 || rating > 5 {
		return 0
	}
	return rating
}
