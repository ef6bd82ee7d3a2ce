package usecase

import (
	"math/rand"
	"strings"
	"time"

	"github.com/smartcar/advisor/internal/domain"
)

// performanceMarques are brands whose cars default to manual regardless of
// any other signal.
var performanceMarques = []string{"ferrari", "lamborghini", "porsche", "aston", "mclaren"}

const (
	manualHorsepowerFloor = 400.0 // above this a car is assumed manual
	automaticSeatsFloor   = 5     // family-sized cars are assumed automatic
	manualFallbackProb    = 0.4   // stochastic draw for the ambiguous middle
)

// TransmissionInferencer assigns a transmission label to records whose source
// carries none. The rule cascade encodes strong domain priors; the seeded
// fallback guarantees no record is left without a value, which downstream
// filtering relies on.
type TransmissionInferencer struct {
	rng *rand.Rand
}

// NewTransmissionInferencer creates an inferencer with an explicit seed.
// A zero seed draws from the clock, for production runs that do not need
// reproducibility.
func NewTransmissionInferencer(seed int64) *TransmissionInferencer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &TransmissionInferencer{rng: rand.New(rand.NewSource(seed))}
}

// Infer evaluates the rule cascade in priority order, first match wins:
//  1. performance marque or horsepower > 400 -> manual
//  2. electrified fuel (electric/hybrid/plug) -> automatic
//  3. seats >= 5 -> automatic
//  4. stochastic draw: manual p=0.4, automatic p=0.6
func (t *TransmissionInferencer) Infer(brand, fuel string, horsepower float64, seats int) string {
	brandLower := strings.ToLower(brand)
	for _, marque := range performanceMarques {
		if strings.Contains(brandLower, marque) {
			return domain.TransmissionManual
		}
	}
	if horsepower > manualHorsepowerFloor {
		return domain.TransmissionManual
	}

	for _, f := range []string{"electric", "hybrid", "plug"} {
		if strings.Contains(fuel, f) {
			return domain.TransmissionAutomatic
		}
	}

	if seats >= automaticSeatsFloor {
		return domain.TransmissionAutomatic
	}

	if t.rng.Float64() < manualFallbackProb {
		return domain.TransmissionManual
	}
	return domain.TransmissionAutomatic
}
