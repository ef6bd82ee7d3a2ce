package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/smartcar/advisor/config"
	"github.com/smartcar/advisor/internal/domain"
	"github.com/smartcar/advisor/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

func testCars() []domain.CarRecord {
	return []domain.CarRecord{
		{Brand: "Tesla", Name: "Model3", Price: 45000, Seats: 5, Fuel: "electric",
			Transmission: "automatic", Purpose: "city", Rating: 5},
		{Brand: "Honda", Name: "Civic", Price: 24000, Seats: 2, Fuel: "petrol",
			Transmission: "manual", Purpose: "city", Rating: 4},
	}
}

// setupTestRouter creates a test router over a small in-memory car table
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		RateLimit: config.RateLimitConfig{PerMinute: 0},
	}

	recommender := usecase.NewRecommender(usecase.RecommenderConfig{}, zerolog.Nop())
	handler := NewHandler(recommender, testCars())

	return SetupRouter(cfg, handler)
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
	if body["cars"] != float64(2) {
		t.Errorf("cars field = %v, want 2", body["cars"])
	}
}

func TestListCars(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Cars  []domain.CarRecord `json:"cars"`
		Count int                `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Count != 2 || len(body.Cars) != 2 {
		t.Errorf("count = %d, len(cars) = %d, want 2 and 2", body.Count, len(body.Cars))
	}
}

func TestRecommendEndpoint(t *testing.T) {
	router := setupTestRouter()

	postRecommendations := func(t *testing.T, payload string) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations",
			bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("returns ranked results", func(t *testing.T) {
		w := postRecommendations(t, `{"budget":50000,"fuel":"electric","transmission":"automatic","purpose":"city"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var body struct {
			Results []domain.ScoredResult `json:"results"`
			Count   int                   `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Count != 1 {
			t.Fatalf("count = %d, want 1", body.Count)
		}
		if body.Results[0].Car.Name != "Model3" {
			t.Errorf("top result = %s, want Model3", body.Results[0].Car.Name)
		}
		if body.Results[0].Score != 110 {
			t.Errorf("score = %v, want 110", body.Results[0].Score)
		}
	})

	t.Run("empty match returns 200 with empty results", func(t *testing.T) {
		w := postRecommendations(t, `{"budget":50000,"fuel":"diesel"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var body struct {
			Results []domain.ScoredResult `json:"results"`
			Count   int                   `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Count != 0 || body.Results == nil {
			t.Errorf("want empty but non-nil results, got count=%d results=%v", body.Count, body.Results)
		}
	})

	t.Run("invalid preference returns 400", func(t *testing.T) {
		w := postRecommendations(t, `{"budget":-1,"fuel":"electric"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		w := postRecommendations(t, `{not json`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
