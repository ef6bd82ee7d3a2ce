package domain

// Canonical fuel categories. Anything else passes through as its own literal
// but is treated as FuelOther when filtering.
const (
	FuelPetrol   = "petrol"
	FuelDiesel   = "diesel"
	FuelHybrid   = "hybrid"
	FuelElectric = "electric"
	FuelOther    = "other"
)

// Transmission labels. Inference never leaves a record without one.
const (
	TransmissionManual    = "manual"
	TransmissionAutomatic = "automatic"
)

// Purpose labels derived from horsepower and seat count.
const (
	PurposeSport   = "sport"
	PurposeFamily  = "family"
	PurposeCity    = "city"
	PurposeOffroad = "offroad"
)

// RawRecord is one untyped row of source data. Fields may be missing, carry
// currency symbols, unit words, or numeric ranges ("$45,000-$60,000",
// "450 hp", "5 seats"). Transmission and Rating are only populated when the
// source is an already-canonical table being re-ingested.
type RawRecord struct {
	Brand        string
	Name         string
	Engine       string
	Capacity     string
	Horsepower   string
	TopSpeed     string
	Acceleration string
	Price        string
	Fuel         string
	Seats        string
	Torque       string
	Transmission string
	Rating       string
}

// CarRecord is a fully normalized vehicle entry. Only the canonicalizer
// produces these; once produced they are immutable.
type CarRecord struct {
	Brand        string  `json:"brand"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Horsepower   float64 `json:"horsepower"`   // 0 when unknown
	Acceleration float64 `json:"acceleration"` // 0 when unknown
	Seats        int     `json:"seats"`
	Fuel         string  `json:"fuel"`
	Transmission string  `json:"transmission"`
	Purpose      string  `json:"purpose"`
	Rating       int     `json:"rating"` // 0 when the source had no rating
}

// DerivePurpose classifies a car from its cleaned horsepower and seat count.
func DerivePurpose(horsepower float64, seats int) string {
	switch {
	case horsepower > 400:
		return PurposeSport
	case seats >= 5:
		return PurposeFamily
	default:
		return PurposeCity
	}
}
