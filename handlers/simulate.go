package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-agronomist/types"
)

// Canned field scenarios for client development: depleted acidic soil, a
// well-stocked plot, and an alkaline plot under heavy rain. Nothing here
// touches the classifier or Firestore.
var simulationScenarios = []struct {
	Name    string              `json:"name"`
	Reading types.SensorReading `json:"reading"`
	Label   string              `json:"label"`
}{
	{
		Name:    "depleted acidic plot",
		Reading: types.SensorReading{N: 50, P: 10, K: 40, Temperature: 27, Humidity: 70, Ph: 5.0, Rainfall: 400},
		Label:   "NPK-rich Complete Fertilizer",
	},
	{
		Name:    "well-stocked plot",
		Reading: types.SensorReading{N: 150, P: 40, K: 160, Temperature: 26, Humidity: 65, Ph: 6.5, Rainfall: 900},
		Label:   "Balanced Maintenance Fertilizer",
	},
	{
		Name:    "alkaline plot, heavy rain",
		Reading: types.SensorReading{N: 70, P: 35, K: 90, Temperature: 24, Humidity: 80, Ph: 8.0, Rainfall: 1400},
		Label:   "Nitrogen-rich Fertilizer",
	},
}

// SimulateReadings runs the bundled scenarios through the engine and returns
// the full prediction for each.
func SimulateReadings(c *gin.Context) {
	results := make([]gin.H, 0, len(simulationScenarios))

	for _, scenario := range simulationScenarios {
		pred, err := BuildPrediction(scenario.Reading, scenario.Label)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "scenario": scenario.Name})
			return
		}
		results = append(results, gin.H{
			"scenario":   scenario.Name,
			"reading":    scenario.Reading,
			"label":      scenario.Label,
			"prediction": pred,
		})
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
