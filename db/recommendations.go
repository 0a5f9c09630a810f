package db

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-agronomist/types"
)

const (
	// The mobile client watches a single live document for the current
	// recommendation; every prediction also lands in a history collection.
	recommendationCollection = "machine-learning-model"
	historyCollection        = "recommendation-history"

	defaultFertilizerDocID = "VM5JaRgm4URI58Gg1HcV"
)

func fertilizerDocID() string {
	if id := os.Getenv("FERTILIZER_DOC_ID"); id != "" {
		return id
	}
	return defaultFertilizerDocID
}

// UpdateLiveRecommendation merges the prediction into the live document the
// client watches and stamps it server-side.
func UpdateLiveRecommendation(client *firestore.Client, pred types.PredictionResponse) types.FirestoreUpdateResult {
	ctx := context.Background()
	docID := fertilizerDocID()

	docData := map[string]interface{}{
		"fertilizerType":        pred.FertilizerType,
		"fertilizerApplication": pred.FertilizerApplication,
		"pHStatus":              pred.PhStatus,
		"rainfallStatus":        pred.RainfallStatus,
		"npkStatus":             pred.NPKStatus,
		"degraded":              pred.Degraded,
		"timestamp":             firestore.ServerTimestamp,
	}
	if pred.QuantityRecommendation != nil {
		docData["quantityRecommendation"] = *pred.QuantityRecommendation
	}

	docRef := client.Collection(recommendationCollection).Doc(docID)
	if _, err := docRef.Set(ctx, docData, firestore.MergeAll); err != nil {
		log.Printf("Error updating fertilizer recommendation: %v", err)
		return types.FirestoreUpdateResult{
			DocumentID: docID,
			Success:    false,
			Message:    fmt.Sprintf("Error updating fertilizer recommendation: %v", err),
		}
	}

	log.Printf("Successfully updated fertilizer data in document %s", docID)
	return types.FirestoreUpdateResult{
		DocumentID: docID,
		Success:    true,
		Message:    "Fertilizer recommendation updated successfully",
	}
}

// SaveRecommendationHistory appends the prediction to the history collection
// and returns the new document ID.
func SaveRecommendationHistory(client *firestore.Client, pred types.PredictionResponse) (string, error) {
	ctx := context.Background()
	docID := uuid.NewString()

	_, err := client.Collection(historyCollection).Doc(docID).Set(ctx, map[string]interface{}{
		"prediction": pred,
		"timestamp":  firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("failed to save recommendation history: %w", err)
	}
	return docID, nil
}

// GetLatestRecommendation reads the live document. Returns (nil, nil) when the
// document does not exist yet.
func GetLatestRecommendation(client *firestore.Client) (*types.PredictionResponse, error) {
	ctx := context.Background()
	docID := fertilizerDocID()

	doc, err := client.Collection(recommendationCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			log.Printf("Recommendation document %s does not exist", docID)
			return nil, nil
		}
		return nil, err
	}

	var pred types.PredictionResponse
	if err := doc.DataTo(&pred); err != nil {
		return nil, fmt.Errorf("error converting recommendation document: %w", err)
	}
	pred.ID = doc.Ref.ID
	return &pred, nil
}
