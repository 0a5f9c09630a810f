package agronomy

import (
	"math"

	"go-agronomist/types"
)

// Ideal NPK proportions for maize, roughly 1.5 : 0.5 : 1. The balance score
// measures how far a reading's nutrient mix sits from these portions.
const (
	idealNShare = 1.5
	idealPShare = 0.5
	idealKShare = 1.0

	// Guards ratio denominators; a zeroed sensor channel must still produce a
	// finite feature vector for the classifier.
	ratioEpsilon = 1e-9
)

// FeatureVector builds the engineered features the external classifier was
// trained on, keyed by the column names of its training frame.
func FeatureVector(r types.SensorReading) map[string]float64 {
	totalIdeal := idealNShare + idealPShare + idealKShare
	totalNPK := r.N + r.P + r.K

	features := map[string]float64{
		"N":           r.N,
		"P":           r.P,
		"K":           r.K,
		"temperature": r.Temperature,
		"humidity":    r.Humidity,
		"ph":          r.Ph,
		"rainfall":    r.Rainfall,

		"NPK_ratio":         (r.N + r.P + r.K) / 3,
		"N_P_ratio":         safeRatio(r.N, r.P),
		"N_K_ratio":         safeRatio(r.N, r.K),
		"P_K_ratio":         safeRatio(r.P, r.K),
		"moisture_index":    (r.Rainfall / (r.Temperature + 0.1)) * 10,
		"ph_deviation":      math.Abs(r.Ph - amendmentTargetPh),
		"rainfall_adequacy": RainfallAdequacy(r.Rainfall),
		"total_npk":         totalNPK,
	}

	nPortion := safeRatio(r.N, totalNPK)
	pPortion := safeRatio(r.P, totalNPK)
	kPortion := safeRatio(r.K, totalNPK)
	features["n_portion"] = nPortion
	features["p_portion"] = pPortion
	features["k_portion"] = kPortion
	features["npk_balance_score"] = math.Abs(nPortion-idealNShare/totalIdeal) +
		math.Abs(pPortion-idealPShare/totalIdeal) +
		math.Abs(kPortion-idealKShare/totalIdeal)
	features["ph_rainfall_interaction"] = features["ph_deviation"] * (1 - features["rainfall_adequacy"])

	return features
}

func safeRatio(num, den float64) float64 {
	return num / (den + ratioEpsilon)
}
