package agronomy

import (
	"go-agronomist/types"
)

// Philippine Department of Agriculture target rates for high-yielding maize,
// in kg/ha. P and K targets are elemental here; oxide conversion happens after
// the deficit is computed.
const (
	targetN = 120.0
	targetP = 60.0
	targetK = 60.0

	// Standard agricultural chemistry conversion factors
	pToP2O5 = 2.29
	kToK2O  = 1.20

	// Dose fractions by nutrient level. High still gets a maintenance dose so a
	// well-stocked soil never reads as "no fertilizer needed".
	fullDoseFraction        = 1.0
	halfDoseFraction        = 0.5
	maintenanceDoseFraction = 0.1
)

// Deficit holds nutrient gaps in kg/ha. N stays elemental; P and K carry both
// the elemental gap and its oxide-form equivalent used for product sizing.
type Deficit struct {
	N    float64
	P    float64
	P2O5 float64
	K    float64
	K2O  float64
}

// CalculateDeficit maps raw N/P/K readings to deficits against the maize
// targets. The dose fraction follows the nutrient's category: full below the
// low threshold, half in the medium band, maintenance above. Every field of
// the result is non-negative.
func CalculateDeficit(n, p, k float64) Deficit {
	d := Deficit{
		N: targetN * doseFraction(ClassifyNutrient(NutrientN, n)),
		P: targetP * doseFraction(ClassifyNutrient(NutrientP, p)),
		K: targetK * doseFraction(ClassifyNutrient(NutrientK, k)),
	}
	d.P2O5 = d.P * pToP2O5
	d.K2O = d.K * kToK2O
	return d
}

func doseFraction(level types.NutrientLevel) float64 {
	switch level {
	case types.LevelLow:
		return fullDoseFraction
	case types.LevelMedium:
		return halfDoseFraction
	default:
		return maintenanceDoseFraction
	}
}
