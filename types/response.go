package types

// PredictionResponse is what the predict endpoint returns and what gets written
// to the live Firestore document the mobile client watches.
type PredictionResponse struct {
	FertilizerType         string                    `json:"fertilizer_type" firestore:"fertilizerType"`
	FertilizerApplication  string                    `json:"fertilizer_application" firestore:"fertilizerApplication"`
	PhStatus               PhLevel                   `json:"pH_status" firestore:"pHStatus"`
	RainfallStatus         RainfallLevel             `json:"rainfall_status" firestore:"rainfallStatus"`
	NPKStatus              NPKStatus                 `json:"npk_status" firestore:"npkStatus"`
	QuantityRecommendation *FertilizerRecommendation `json:"quantity_recommendation,omitempty" firestore:"quantityRecommendation,omitempty"`
	Degraded               bool                      `json:"degraded,omitempty" firestore:"degraded,omitempty"`
	ID                     string                    `json:"id,omitempty" firestore:"-"`
}

// FirestoreUpdateResult reports the outcome of a live-document update.
type FirestoreUpdateResult struct {
	DocumentID string `json:"document_id"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}
