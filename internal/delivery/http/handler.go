package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcar/advisor/internal/domain"
	"github.com/smartcar/advisor/internal/usecase"
)

// Handler holds dependencies for HTTP handlers. The car table is loaded once
// at startup and treated as immutable for the life of the process.
type Handler struct {
	recommender *usecase.Recommender
	cars        []domain.CarRecord
}

// NewHandler creates a new HTTP handler.
func NewHandler(recommender *usecase.Recommender, cars []domain.CarRecord) *Handler {
	return &Handler{recommender: recommender, cars: cars}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "smartcar-advisor",
		"cars":    len(h.cars),
	})
}

// ListCars returns the full canonical record set.
func (h *Handler) ListCars(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cars":  h.cars,
		"count": len(h.cars),
	})
}

// Recommend handles recommendation queries. An empty result set is a normal
// 200 response; only a malformed preference is a 400.
func (h *Handler) Recommend(c *gin.Context) {
	var pref domain.Preference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	results, err := h.recommender.Recommend(c.Request.Context(), pref, h.cars)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPreference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if results == nil {
		results = []domain.ScoredResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
