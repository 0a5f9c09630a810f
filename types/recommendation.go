package types

// FertilizerDose is a single product application rate in kg of product per hectare.
type FertilizerDose struct {
	Name     string  `json:"name" firestore:"name"`
	Quantity float64 `json:"quantity" firestore:"quantity"`
	Unit     string  `json:"unit" firestore:"unit"`
}

// StageDose is the secondary product share applied within one schedule stage.
type StageDose struct {
	Fertilizer string  `json:"fertilizer" firestore:"fertilizer"`
	Quantity   float64 `json:"quantity" firestore:"quantity"`
}

// ApplicationStage is one timed application in the schedule. Percentage is the
// share of the primary dose applied at this stage, out of 100.
type ApplicationStage struct {
	Name       string     `json:"name" firestore:"name"`
	Timing     string     `json:"timing" firestore:"timing"`
	Percentage float64    `json:"percentage" firestore:"percentage"`
	Quantity   float64    `json:"quantity" firestore:"quantity"`
	Fertilizer string     `json:"fertilizer" firestore:"fertilizer"`
	Secondary  *StageDose `json:"secondary,omitempty" firestore:"secondary,omitempty"`
}

// SoilAmendment is a lime or sulfur correction, independent of the fertilizer dose.
type SoilAmendment struct {
	Name        string  `json:"name" firestore:"name"`
	Quantity    float64 `json:"quantity" firestore:"quantity"`
	Unit        string  `json:"unit" firestore:"unit"`
	Application string  `json:"application" firestore:"application"`
}

// FertilizerRecommendation is the full output of the recommendation engine.
// Schedule stages are chronological: basal first, top dressings after.
type FertilizerRecommendation struct {
	Primary       FertilizerDose     `json:"primary_fertilizer" firestore:"primaryFertilizer"`
	Secondary     *FertilizerDose    `json:"secondary_fertilizer,omitempty" firestore:"secondaryFertilizer,omitempty"`
	Schedule      []ApplicationStage `json:"application_schedule" firestore:"applicationSchedule"`
	SoilAmendment *SoilAmendment     `json:"soil_amendment,omitempty" firestore:"soilAmendment,omitempty"`
}
