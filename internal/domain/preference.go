package domain

// Preference captures one user's query. Category fields are free-text
// substrings matched case-insensitively; empty means "any".
type Preference struct {
	Budget       float64 `json:"budget" binding:"required"`
	Fuel         string  `json:"fuel,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Purpose      string  `json:"purpose,omitempty"`
}

// ScoredResult pairs a matching car with its SmartCar score and a
// human-readable explanation. Produced fresh per query, never cached.
type ScoredResult struct {
	Car         CarRecord `json:"car"`
	Score       float64   `json:"score"`
	Explanation string    `json:"explanation"`
}
