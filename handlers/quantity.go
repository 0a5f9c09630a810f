package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-agronomist/types"
)

// QuantityCalculator is the standalone quantity-only pathway: the caller
// supplies the fertilizer label directly, so no classifier or persistence is
// involved. Unset parameters take the documented defaults.
func QuantityCalculator(c *gin.Context) {
	reading := types.SensorReading{
		Temperature: 25.0,
		Humidity:    65.0,
	}

	var err error
	if reading.N, err = queryFloat(c, "n", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reading.P, err = queryFloat(c, "p", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reading.K, err = queryFloat(c, "k", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reading.Ph, err = queryFloat(c, "ph", 6.5); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if reading.Rainfall, err = queryFloat(c, "rainfall", 800); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if reading.N < 0 || reading.P < 0 || reading.K < 0 || reading.Rainfall < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nutrient and rainfall values must be non-negative"})
		return
	}
	if reading.Ph < 0 || reading.Ph > 14 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ph must be between 0 and 14"})
		return
	}

	label := c.DefaultQuery("fertilizer_type", "Complete Fertilizer")

	pred, err := BuildPrediction(reading, label)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pred)
}

func queryFloat(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", name, raw)
	}
	return v, nil
}
