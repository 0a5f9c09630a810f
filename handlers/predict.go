package handlers

import (
	"errors"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-agronomist/agronomy"
	"go-agronomist/db"
	"go-agronomist/mlmodel"
	"go-agronomist/types"
)

// PredictFertilizer classifies a validated sensor reading through the external
// model, runs the recommendation engine, persists the result, and returns it.
//
// Validation is this layer's job: binding tags reject readings outside their
// physical domain, so the engine downstream never re-checks ranges. Engine
// failures come back as the typed ComputationError and are surfaced as 500s;
// this handler does not substitute the fallback recommendation.
func PredictFertilizer(c *gin.Context, firestoreClient *firestore.Client, classifier mlmodel.Classifier) {
	var reading types.SensorReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	label, err := classifier.Classify(agronomy.FeatureVector(reading))
	if err != nil {
		log.Printf("Error calling fertilizer classifier: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "fertilizer classifier unavailable"})
		return
	}
	log.Printf("Classifier label: %s", label)

	pred, err := BuildPrediction(reading, label)
	if err != nil {
		var compErr *agronomy.ComputationError
		if errors.As(err, &compErr) {
			log.Printf("Recommendation engine failure at %s stage: %v", compErr.Stage, compErr.Err)
		} else {
			log.Printf("Recommendation engine failure: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := db.UpdateLiveRecommendation(firestoreClient, pred)
	if result.Success {
		pred.ID = result.DocumentID
	} else {
		log.Printf("Live document update failed: %s", result.Message)
	}

	if _, err := db.SaveRecommendationHistory(firestoreClient, pred); err != nil {
		log.Printf("History write failed: %v", err)
	}

	c.JSON(http.StatusOK, pred)
}

// BuildPrediction assembles the full prediction payload for a reading and
// label: soil statuses, application-method advisory, and the quantity
// recommendation from the engine.
func BuildPrediction(reading types.SensorReading, label string) (types.PredictionResponse, error) {
	rec, err := agronomy.Recommend(reading, label)
	if err != nil {
		return types.PredictionResponse{}, err
	}

	phStatus := agronomy.ClassifyPh(reading.Ph)
	rainfallStatus := agronomy.ClassifyRainfall(reading.Rainfall)

	return types.PredictionResponse{
		FertilizerType:        label,
		FertilizerApplication: agronomy.ApplicationMethod(rainfallStatus, phStatus),
		PhStatus:              phStatus,
		RainfallStatus:        rainfallStatus,
		NPKStatus: types.NPKStatus{
			N: agronomy.ClassifyNutrient(agronomy.NutrientN, reading.N),
			P: agronomy.ClassifyNutrient(agronomy.NutrientP, reading.P),
			K: agronomy.ClassifyNutrient(agronomy.NutrientK, reading.K),
		},
		QuantityRecommendation: &rec,
	}, nil
}
