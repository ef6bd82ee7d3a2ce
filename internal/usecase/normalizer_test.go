package usecase

import (
	"testing"

	"github.com/smartcar/advisor/internal/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		known bool
	}{
		{"plain dollar amount", "$30,000", 30000, true},
		{"range collapses to mean", "$45,000-$60,000", 52500, true},
		{"range without symbols", "45,000-60,000", 52500, true},
		{"range with spaces", "$20,000 - $24,000", 22000, true},
		{"three tokens falls back to first", "$20,000-$25,000-$30,000", 20000, true},
		{"decimal value", "19999.99", 19999.99, true},
		{"mixed case text around number", "From $18,500 USD", 18500, true},
		{"no digits", "price on request", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.raw)
			if ok != tt.known {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.raw, ok, tt.known)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseHorsepower(t *testing.T) {
	tests := []struct {
		raw   string
		want  float64
		known bool
	}{
		{"450 hp", 450, true},
		{"up to 320", 320, true},
		{"1,020 hp", 1, true}, // integer token only; commas split tokens
		{"n/a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseHorsepower(tt.raw)
		if ok != tt.known || (ok && got != tt.want) {
			t.Errorf("ParseHorsepower(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.known)
		}
	}
}

func TestParseAcceleration(t *testing.T) {
	tests := []struct {
		raw   string
		want  float64
		known bool
	}{
		{"3.2 s", 3.2, true},
		{"2.5sec", 2.5, true},
		{"10", 10, true},
		{"quick", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAcceleration(tt.raw)
		if ok != tt.known || (ok && got != tt.want) {
			t.Errorf("ParseAcceleration(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.known)
		}
	}
}

func TestParseSeats(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"5 seats", 5},
		{"2", 2},
		{"", 4},
		{"unknown", 4},
		{"0", 4},
	}

	for _, tt := range tests {
		if got := ParseSeats(tt.raw); got != tt.want {
			t.Errorf("ParseSeats(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeFuel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Petrol", domain.FuelPetrol},
		{"  Electric ", domain.FuelElectric},
		{"Plug-In Hybrid", domain.FuelHybrid},
		{"plug in hyrbrid", domain.FuelHybrid}, // dataset misspelling
		{"hybrid electric", domain.FuelHybrid},
		{"petrol/ev", domain.FuelHybrid},
		{"diesel hybrid", domain.FuelHybrid},
		{"petrol/diesel", domain.FuelPetrol}, // combined fuels resolve to first listed
		{"diesel/petrol", domain.FuelDiesel},
		{"cng/petrol", domain.FuelPetrol},
		{"hydrogen", "hydrogen"}, // unmatched passes through literally
	}

	for _, tt := range tests {
		if got := NormalizeFuel(tt.raw); got != tt.want {
			t.Errorf("NormalizeFuel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFilterFuel(t *testing.T) {
	t.Run("canonical buckets filter as themselves", func(t *testing.T) {
		for _, fuel := range []string{domain.FuelPetrol, domain.FuelDiesel, domain.FuelHybrid, domain.FuelElectric} {
			if got := FilterFuel(fuel); got != fuel {
				t.Errorf("FilterFuel(%q) = %q, want %q", fuel, got, fuel)
			}
		}
	})

	t.Run("pass-through literals filter as other", func(t *testing.T) {
		if got := FilterFuel("hydrogen"); got != domain.FuelOther {
			t.Errorf("FilterFuel(hydrogen) = %q, want %q", got, domain.FuelOther)
		}
	})
}
