package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcar/advisor/internal/domain"
)

func sampleCars() []domain.CarRecord {
	return []domain.CarRecord{
		{
			Brand: "Tesla", Name: "Model3", Price: 45000, Horsepower: 283,
			Acceleration: 5.8, Seats: 5, Fuel: "electric",
			Transmission: "automatic", Purpose: "family", Rating: 4,
		},
		{
			Brand: "Ferrari", Name: "Roma", Price: 220000, Horsepower: 612,
			Acceleration: 3.4, Seats: 2, Fuel: "petrol",
			Transmission: "manual", Purpose: "sport", Rating: 0,
		},
	}
}

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cars_clean.csv")

	w, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleCars()))
	require.NoError(t, w.Close())

	// The canonical file must re-ingest through the Reader unchanged.
	records, err := NewReader(zerolog.Nop()).Read(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Tesla", records[0].Brand)
	assert.Equal(t, "45000", records[0].Price)
	assert.Equal(t, "5.8", records[0].Acceleration)
	assert.Equal(t, "automatic", records[0].Transmission)
	assert.Equal(t, "family", records[0].Purpose)
	assert.Equal(t, "4", records[0].Rating)

	assert.Equal(t, "0", records[1].Rating, "missing rating persists as 0, not a default")
}

func TestWriterHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars_clean.csv")

	w, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "brand,name,price,horsepower,acceleration,seats,fuel,transmission,purpose,rating", lines[0])
}
