package storage

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcar/advisor/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cars.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRecords() []domain.CarRecord {
	return []domain.CarRecord{
		{
			Brand: "Tesla", Name: "Model3", Price: 45000, Horsepower: 283,
			Acceleration: 5.8, Seats: 5, Fuel: "electric",
			Transmission: "automatic", Purpose: "family", Rating: 4,
		},
		{
			Brand: "Honda", Name: "Civic", Price: 24000, Horsepower: 158,
			Acceleration: 8.5, Seats: 2, Fuel: "petrol",
			Transmission: "manual", Purpose: "city", Rating: 0,
		},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write(testRecords()))

	cars, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, testRecords(), cars)
}

func TestSQLiteStoreWriteReplacesPreviousBatch(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write(testRecords()))
	require.NoError(t, store.Write(testRecords()[:1]))

	cars, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Tesla", cars[0].Brand)
}

func TestSQLiteStoreEmptyWrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write(nil))

	cars, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, cars)
}

func TestSQLiteStoreClear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write(testRecords()))
	require.NoError(t, store.Clear())

	cars, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, cars)
}
