package agronomy

import (
	"go-agronomist/types"
)

// Classification thresholds for maize. Values are ppm (mg/kg) for nutrients,
// pH units, and mm per growing season for rainfall.
const (
	// Maize is a heavy nitrogen feeder
	nLowThreshold    = 80.0
	nMediumThreshold = 140.0

	// Moderately demanding in P
	pLowThreshold    = 15.0
	pMediumThreshold = 30.0

	// Good K levels needed for stalk strength
	kLowThreshold    = 80.0
	kMediumThreshold = 150.0

	phVeryAcidicMax       = 5.5
	phAcidicMax           = 6.0
	phOptimalMax          = 7.0
	phSlightlyAlkalineMax = 7.5

	// Maize typically needs 500-1200mm over the season
	rainInsufficientMax = 500.0
	rainMarginalMax     = 750.0
	rainOptimalMax      = 1200.0

	// Adequacy decays to zero at 2000mm (slope -1/800 past the optimal band)
	rainAdequacyFloor = 2000.0
)

type Nutrient string

const (
	NutrientN Nutrient = "N"
	NutrientP Nutrient = "P"
	NutrientK Nutrient = "K"
)

// ClassifyNutrient buckets a raw macronutrient reading into Low/Medium/High.
// Thresholds differ per nutrient; unknown nutrients classify against the N scale.
func ClassifyNutrient(nutrient Nutrient, value float64) types.NutrientLevel {
	low, medium := nLowThreshold, nMediumThreshold
	switch nutrient {
	case NutrientP:
		low, medium = pLowThreshold, pMediumThreshold
	case NutrientK:
		low, medium = kLowThreshold, kMediumThreshold
	}

	if value < low {
		return types.LevelLow
	}
	if value < medium {
		return types.LevelMedium
	}
	return types.LevelHigh
}

// ClassifyPh buckets soil pH. Maize prefers slightly acidic to neutral,
// so [6.0, 7.0] is the optimal band.
func ClassifyPh(value float64) types.PhLevel {
	switch {
	case value < phVeryAcidicMax:
		return types.PhVeryAcidic
	case value < phAcidicMax:
		return types.PhAcidic
	case value <= phOptimalMax:
		return types.PhOptimal
	case value <= phSlightlyAlkalineMax:
		return types.PhSlightlyAlkaline
	default:
		return types.PhAlkaline
	}
}

// ClassifyRainfall buckets seasonal rainfall in mm.
func ClassifyRainfall(value float64) types.RainfallLevel {
	switch {
	case value < rainInsufficientMax:
		return types.RainfallInsufficient
	case value < rainMarginalMax:
		return types.RainfallMarginal
	case value <= rainOptimalMax:
		return types.RainfallOptimal
	default:
		return types.RainfallExcessive
	}
}

// RainfallAdequacy scores rainfall on [0,1]: linear ramp up to 500mm, flat 1.0
// through the optimal band, then a linear penalty that bottoms out at 2000mm.
func RainfallAdequacy(value float64) float64 {
	switch {
	case value < rainInsufficientMax:
		return value / rainInsufficientMax
	case value <= rainOptimalMax:
		return 1.0
	default:
		excess := (value - rainOptimalMax) / (rainAdequacyFloor - rainOptimalMax)
		if excess > 1 {
			excess = 1
		}
		return 1 - excess
	}
}
