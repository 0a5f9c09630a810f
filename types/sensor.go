package types

// SensorReading is one snapshot from the field soil-sensor kit.
// Binding tags reject physically impossible values at the HTTP boundary,
// so everything past the handlers can assume a valid reading.
type SensorReading struct {
	N           float64 `json:"N" firestore:"N" binding:"gte=0"`
	P           float64 `json:"P" firestore:"P" binding:"gte=0"`
	K           float64 `json:"K" firestore:"K" binding:"gte=0"`
	Temperature float64 `json:"temperature" firestore:"temperature" binding:"gte=0"`
	Humidity    float64 `json:"humidity" firestore:"humidity" binding:"gte=0,lte=100"`
	Ph          float64 `json:"ph" firestore:"ph" binding:"gte=0,lte=14"`
	Rainfall    float64 `json:"rainfall" firestore:"rainfall" binding:"gte=0"`
}

type NutrientLevel string

const (
	LevelLow    NutrientLevel = "Low"
	LevelMedium NutrientLevel = "Medium"
	LevelHigh   NutrientLevel = "High"
)

type PhLevel string

const (
	PhVeryAcidic       PhLevel = "Very Acidic"
	PhAcidic           PhLevel = "Acidic"
	PhOptimal          PhLevel = "Optimal"
	PhSlightlyAlkaline PhLevel = "Slightly Alkaline"
	PhAlkaline         PhLevel = "Alkaline"
)

type RainfallLevel string

const (
	RainfallInsufficient RainfallLevel = "Insufficient"
	RainfallMarginal     RainfallLevel = "Marginal"
	RainfallOptimal      RainfallLevel = "Optimal"
	RainfallExcessive    RainfallLevel = "Excessive"
)

// NPKStatus holds the per-nutrient classification reported back to the client.
type NPKStatus struct {
	N NutrientLevel `json:"N" firestore:"N"`
	P NutrientLevel `json:"P" firestore:"P"`
	K NutrientLevel `json:"K" firestore:"K"`
}
