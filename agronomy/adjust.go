package agronomy

import (
	"go-agronomist/types"
)

// Soil-condition correction multipliers. All are > 1, so an adjusted deficit
// can never drop below the calculated one.
const (
	// Acid soils fix phosphorus with iron and aluminum
	acidPhosphorusFactor = 1.3
	// Alkaline soils fix phosphorus with calcium
	alkalinePhosphorusFactor = 1.25
	// Excess rainfall leaches nitrate
	leachingNitrogenFactor = 1.2
)

// SoilAdjustment carries the corrected deficits plus the structured signals
// downstream stages need. Scheduling keys off RequiresSplitApplication rather
// than parsing any label text.
type SoilAdjustment struct {
	Deficit                  Deficit
	RequiresSplitApplication bool
	PhModifier               types.PhLevel
	RainfallModifier         types.RainfallLevel
}

// AdjustForSoilConditions applies the pH and rainfall corrections to a deficit.
// The corrections are independent and compound when several conditions hold,
// e.g. very acidic soil under excessive rainfall scales both P2O5 and N.
// Insufficient rainfall changes no quantity; it only raises the split-application
// flag so doses go out in smaller moisture-matched portions.
func AdjustForSoilConditions(d Deficit, ph, rainfall float64) SoilAdjustment {
	adj := SoilAdjustment{
		Deficit:          d,
		PhModifier:       ClassifyPh(ph),
		RainfallModifier: ClassifyRainfall(rainfall),
	}

	if ph < phVeryAcidicMax {
		adj.Deficit.P2O5 *= acidPhosphorusFactor
	} else if ph > phSlightlyAlkalineMax {
		adj.Deficit.P2O5 *= alkalinePhosphorusFactor
	}

	if rainfall > rainOptimalMax {
		adj.Deficit.N *= leachingNitrogenFactor
	} else if rainfall < rainInsufficientMax {
		adj.RequiresSplitApplication = true
	}

	return adj
}
