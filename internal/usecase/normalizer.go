package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smartcar/advisor/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	integerRegex = regexp.MustCompile(`\d+`)
	decimalRegex = regexp.MustCompile(`\d+\.?\d*`)
)

// fuelSynonyms collapses free-text fuel labels to a canonical category.
// Combined fuels resolve to the first-listed fuel; every hybrid and plug-in
// variant (including the dataset's misspellings) collapses to hybrid.
var fuelSynonyms = map[string]string{
	"plug in hyrbrid":         domain.FuelHybrid,
	"plug-in hybrid":          domain.FuelHybrid,
	"plug in hybrid":          domain.FuelHybrid,
	"plug_in_hyrbrid":         domain.FuelHybrid,
	"plug_in_hybrid":          domain.FuelHybrid,
	"plug":                    domain.FuelHybrid,
	"hybrid electric":         domain.FuelHybrid,
	"petrol/hybrid":           domain.FuelHybrid,
	"petrol, hybrid":          domain.FuelHybrid,
	"hybrid/petrol":           domain.FuelHybrid,
	"hybrid (petrol)":         domain.FuelHybrid,
	"hybrid (gas + electric)": domain.FuelHybrid,
	"gas / hybrid":            domain.FuelHybrid,
	"hybrid / plug-in":        domain.FuelHybrid,
	"diesel hybrid":           domain.FuelHybrid,
	"hybrid/electric":         domain.FuelHybrid,
	"petrol/ev":               domain.FuelHybrid,
	"cng/petrol":              domain.FuelPetrol,
	"petrol/diesel":           domain.FuelPetrol,
	"diesel/petrol":           domain.FuelDiesel,
	"petrol, diesel":          domain.FuelPetrol,
	"petrol/awd":              domain.FuelPetrol,
}

// canonicalFuels is the set of categories the matcher filters on directly.
var canonicalFuels = map[string]bool{
	domain.FuelPetrol:   true,
	domain.FuelDiesel:   true,
	domain.FuelHybrid:   true,
	domain.FuelElectric: true,
}

const defaultSeats = 4

// ParsePrice extracts a single representative price from raw text.
// Currency symbols and thousands separators are stripped first. A hyphenated
// range with exactly two integer tokens collapses to its arithmetic mean;
// any other token count falls through to single-token extraction. The range
// check must run before single-token extraction, otherwise "45,000-60,000"
// would silently resolve to the lower bound.
func ParsePrice(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(strings.ToLower(cleaned))

	if strings.Contains(cleaned, "-") {
		parts := integerRegex.FindAllString(cleaned, -1)
		if len(parts) == 2 {
			lo, errLo := strconv.ParseFloat(parts[0], 64)
			hi, errHi := strconv.ParseFloat(parts[1], 64)
			if errLo == nil && errHi == nil {
				return (lo + hi) / 2, true
			}
		}
	}

	match := decimalRegex.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseHorsepower extracts the first integer token ("450 hp" -> 450).
func ParseHorsepower(raw string) (float64, bool) {
	match := integerRegex.FindString(raw)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseAcceleration extracts the first decimal token, tolerating fractional
// values ("3.2 s" -> 3.2).
func ParseAcceleration(raw string) (float64, bool) {
	match := decimalRegex.FindString(raw)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseSeats extracts the first integer token, substituting the default for
// absent, unparseable, or non-positive values.
func ParseSeats(raw string) int {
	match := integerRegex.FindString(raw)
	if match == "" {
		return defaultSeats
	}
	seats, err := strconv.Atoi(match)
	if err != nil || seats <= 0 {
		return defaultSeats
	}
	return seats
}

// NormalizeFuel case-folds, trims, and applies the synonym table. Unmatched
// text passes through as its own literal category so display keeps the
// original information; FilterFuel decides how it filters.
func NormalizeFuel(raw string) string {
	fuel := strings.TrimSpace(strings.ToLower(raw))
	if canonical, ok := fuelSynonyms[fuel]; ok {
		return canonical
	}
	return fuel
}

// FilterFuel maps a normalized fuel to the category used for filtering:
// one of the four canonical buckets, or "other" for pass-through literals.
func FilterFuel(fuel string) string {
	if canonicalFuels[fuel] {
		return fuel
	}
	return domain.FuelOther
}

// normalizeText trims and collapses internal whitespace in identity fields.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
