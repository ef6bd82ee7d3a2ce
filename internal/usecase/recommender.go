package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartcar/advisor/internal/domain"
)

// Scoring constants
const (
	ratingWeight       = 20.0 // rating in [1,5] contributes [20,100]
	priceFitScale      = 100.0
	defaultBudgetSlack = 1.25 // surfaces slightly-over-budget near misses
	defaultMaxResults  = 10
	defaultRating      = 3 // substituted at scoring time when a record has none
)

// RecommenderConfig holds configuration for the recommender.
type RecommenderConfig struct {
	BudgetSlack        float64
	MaxResults         int
	DefaultRating      int
	EnableDebugLogging bool
}

// Recommender filters the canonical record set against a preference and
// ranks the survivors by SmartCar score.
type Recommender struct {
	budgetSlack        float64
	maxResults         int
	defaultRating      int
	logger             zerolog.Logger
	enableDebugLogging bool
}

// NewRecommender creates a recommender, substituting defaults for zero or
// negative configuration values.
func NewRecommender(cfg RecommenderConfig, logger zerolog.Logger) *Recommender {
	slack := cfg.BudgetSlack
	if slack <= 0 {
		slack = defaultBudgetSlack
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	rating := cfg.DefaultRating
	if rating < 1 || rating > 5 {
		rating = defaultRating
	}
	return &Recommender{
		budgetSlack:        slack,
		maxResults:         maxResults,
		defaultRating:      rating,
		logger:             logger,
		enableDebugLogging: cfg.EnableDebugLogging,
	}
}

// Recommend returns up to MaxResults scored results sorted by descending
// score. An empty result is a normal outcome; only a malformed preference is
// an error. Ties keep their filtered order.
func (r *Recommender) Recommend(ctx context.Context, pref domain.Preference, cars []domain.CarRecord) ([]domain.ScoredResult, error) {
	if err := validatePreference(pref); err != nil {
		return nil, err
	}

	fuelPref := strings.TrimSpace(strings.ToLower(pref.Fuel))
	transPref := strings.TrimSpace(strings.ToLower(pref.Transmission))
	purposePref := strings.TrimSpace(strings.ToLower(pref.Purpose))
	priceCeiling := pref.Budget * r.budgetSlack

	results := make([]domain.ScoredResult, 0, len(cars))
	for _, car := range cars {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !strings.Contains(FilterFuel(car.Fuel), fuelPref) {
			continue
		}
		if !strings.Contains(car.Transmission, transPref) {
			continue
		}
		if !strings.Contains(car.Purpose, purposePref) {
			continue
		}
		if car.Price > priceCeiling {
			continue
		}

		score := r.score(car, pref.Budget)
		if r.enableDebugLogging {
			r.logger.Debug().
				Str("brand", car.Brand).
				Str("name", car.Name).
				Float64("score", score).
				Msg("candidate matched")
		}

		results = append(results, domain.ScoredResult{
			Car:         car,
			Score:       score,
			Explanation: explain(car),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > r.maxResults {
		results = results[:r.maxResults]
	}

	if r.enableDebugLogging {
		r.logger.Debug().Int("matches", len(results)).Float64("budget", pref.Budget).Msg("recommendation complete")
	}
	return results, nil
}

// score combines rating and price fit. Cars at or above budget contribute 0
// from the price term but still rank by rating alone.
func (r *Recommender) score(car domain.CarRecord, budget float64) float64 {
	rating := car.Rating
	if rating == 0 {
		rating = r.defaultRating
	}
	priceFit := (budget - car.Price) / budget
	if priceFit < 0 {
		priceFit = 0
	}
	return float64(rating)*ratingWeight + priceFit*priceFitScale
}

// validatePreference rejects malformed queries before filtering begins so
// callers can distinguish them from legitimately empty results.
func validatePreference(pref domain.Preference) error {
	if pref.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", domain.ErrInvalidPreference)
	}
	if strings.TrimSpace(pref.Fuel) == "" &&
		strings.TrimSpace(pref.Transmission) == "" &&
		strings.TrimSpace(pref.Purpose) == "" {
		return fmt.Errorf("%w: at least one of fuel, transmission, or purpose is required", domain.ErrInvalidPreference)
	}
	return nil
}

func explain(car domain.CarRecord) string {
	return fmt.Sprintf("%s %s is a %s car with %s fuel and %s transmission - great value for your budget.",
		car.Brand, car.Name, car.Purpose, car.Fuel, car.Transmission)
}
