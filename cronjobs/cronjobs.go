package cronjobs

import (
	"errors"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"

	"go-agronomist/agronomy"
	"go-agronomist/db"
	"go-agronomist/handlers"
	"go-agronomist/mlmodel"
	"go-agronomist/types"
)

// refreshRecommendation recomputes the live recommendation from the newest
// sensor reading. This is the one caller that opts into degraded-mode
// continuity: on a ComputationError it substitutes the documented fallback so
// the client is never left watching a stale document.
func refreshRecommendation(firestoreClient *firestore.Client, classifier mlmodel.Classifier) {
	reading, err := db.GetLatestSensorReading(firestoreClient)
	if err != nil {
		log.Printf("Refresh: failed to read latest sensor reading: %v", err)
		return
	}
	if reading == nil {
		log.Println("Refresh: no sensor readings yet, skipping")
		return
	}

	label, err := classifier.Classify(agronomy.FeatureVector(*reading))
	if err != nil {
		log.Printf("Refresh: classifier call failed: %v", err)
		return
	}

	pred, err := handlers.BuildPrediction(*reading, label)
	if err != nil {
		var compErr *agronomy.ComputationError
		if !errors.As(err, &compErr) {
			log.Printf("Refresh: unexpected engine error: %v", err)
			return
		}
		log.Printf("Refresh: engine failure at %s stage, substituting fallback: %v", compErr.Stage, compErr.Err)
		pred = fallbackPrediction(*reading, label)
	}

	result := db.UpdateLiveRecommendation(firestoreClient, pred)
	if !result.Success {
		log.Printf("Refresh: live document update failed: %s", result.Message)
		return
	}
	if _, err := db.SaveRecommendationHistory(firestoreClient, pred); err != nil {
		log.Printf("Refresh: history write failed: %v", err)
	}
	log.Printf("Refresh: recommendation updated (%s)", pred.FertilizerType)
}

// fallbackPrediction wraps the documented fallback recommendation with the
// soil statuses, which are always computable from a validated reading.
func fallbackPrediction(reading types.SensorReading, label string) types.PredictionResponse {
	phStatus := agronomy.ClassifyPh(reading.Ph)
	rainfallStatus := agronomy.ClassifyRainfall(reading.Rainfall)
	fallback := agronomy.FallbackRecommendation()

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
		QuantityRecommendation: &fallback,
		Degraded:               true,
	}
}

func InitCronJobs(firestoreClient *firestore.Client, classifier mlmodel.Classifier) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Recommendation refresh: every 15 minutes from the newest sensor document
	_, err := c.AddFunc("*/15 * * * *", func() {
		log.Println("\nCronJob: Recommendation Refresh Running")
		refreshRecommendation(firestoreClient, classifier)
	})
	if err != nil {
		log.Println("Error scheduling Recommendation Refresh:", err)
	}

	c.Start()
}
