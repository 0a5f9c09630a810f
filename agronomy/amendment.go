package agronomy

import (
	"go-agronomist/types"
)

// Amendment dosing, approximate formulas calibrated for Philippine soils.
// Lime tons/ha = (6.5 - pH) * 1.5, sulfur kg/ha = (pH - 6.5) * 300.
const (
	amendmentTargetPh = 6.5
	limeFactor        = 1.5
	sulfurFactor      = 300.0

	agriculturalLime   = "Agricultural Lime"
	agriculturalSulfur = "Agricultural Sulfur"
)

// AdviseAmendment derives a lime or sulfur correction from pH alone,
// independent of the nutrient pipeline. Returns nil inside [5.5, 7.5] or when
// the computed dose rounds to zero.
func AdviseAmendment(ph float64) *types.SoilAmendment {
	if ph < phVeryAcidicMax {
		tons := round1((amendmentTargetPh - ph) * limeFactor)
		if tons <= 0 {
			return nil
		}
		return &types.SoilAmendment{
			Name:        agriculturalLime,
			Quantity:    tons,
			Unit:        "tons/ha",
			Application: "Apply and incorporate into soil 2-4 weeks before planting",
		}
	}

	if ph > phSlightlyAlkalineMax {
		kg := round1((ph - amendmentTargetPh) * sulfurFactor)
		if kg <= 0 {
			return nil
		}
		return &types.SoilAmendment{
			Name:        agriculturalSulfur,
			Quantity:    kg,
			Unit:        "kg/ha",
			Application: "Apply and incorporate into soil 4-6 weeks before planting",
		}
	}

	return nil
}
