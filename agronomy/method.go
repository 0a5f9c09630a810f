package agronomy

import (
	"go-agronomist/types"
)

// ApplicationMethod turns the typed rainfall and pH categories into the field
// advisory shown alongside the product recommendation. Rainfall extremes take
// priority over pH concerns.
func ApplicationMethod(rainfall types.RainfallLevel, ph types.PhLevel) string {
	switch {
	case rainfall == types.RainfallInsufficient:
		return "Split Application - Apply in small doses with irrigation"
	case rainfall == types.RainfallExcessive:
		return "Use Slow-Release Formulation to prevent leaching"
	case ph == types.PhVeryAcidic || ph == types.PhAcidic:
		return "Apply after lime treatment for best results"
	case ph == types.PhAlkaline:
		return "Apply with sulfur amendments for best uptake"
	default:
		return "Standard application methods recommended"
	}
}
