package agronomy

import (
	"math"

	"go-agronomist/types"
)

// A primary dose above this gets split into three stages regardless of the
// rainfall signal; single heavy applications waste product to volatilization.
const splitQuantityThreshold = 200.0

// Stage names and field timings for maize, per Department of Agriculture
// practice.
const (
	stageBasal     = "basal"
	stageFirstTop  = "first_top_dressing"
	stageSecondTop = "second_top_dressing"
	stageTop       = "top_dressing"

	timingBasal     = "Apply at planting time or before planting"
	timingFirstTop  = "Apply 25-30 days after planting"
	timingSecondTop = "Apply 45-50 days after planting (before tasseling)"
	timingTop       = "Apply 30 days after planting"
)

// Stage percentage splits. Each set sums to 100 before any rounding.
var (
	splitPercentages    = []float64{40, 30, 30}
	standardPercentages = []float64{70, 30}
)

// NeedsSplitApplication decides the schedule shape from the soil signal and
// the sized primary dose.
func NeedsSplitApplication(adj SoilAdjustment, primary Dose) bool {
	return adj.RequiresSplitApplication || primary.Quantity > splitQuantityThreshold
}

// BuildSchedule allocates the primary dose across growth stages and places the
// secondary product according to its nutrient class: nitrogen carriers are
// weighted toward the top dressings where the crop can take them up,
// phosphorus and potassium carriers toward establishment. Quantities are
// rounded to one decimal here, at the output boundary.
func BuildSchedule(primary Dose, secondary *Dose, split bool) []types.ApplicationStage {
	var stages []types.ApplicationStage
	if split {
		stages = []types.ApplicationStage{
			stage(stageBasal, timingBasal, splitPercentages[0], primary),
			stage(stageFirstTop, timingFirstTop, splitPercentages[1], primary),
			stage(stageSecondTop, timingSecondTop, splitPercentages[2], primary),
		}
	} else {
		stages = []types.ApplicationStage{
			stage(stageBasal, timingBasal, standardPercentages[0], primary),
			stage(stageTop, timingTop, standardPercentages[1], primary),
		}
	}

	if secondary != nil {
		placeSecondary(stages, *secondary, split)
	}
	return stages
}

func stage(name, timing string, percentage float64, primary Dose) types.ApplicationStage {
	return types.ApplicationStage{
		Name:       name,
		Timing:     timing,
		Percentage: percentage,
		Quantity:   round1(primary.Quantity * percentage / 100),
		Fertilizer: primary.Fertilizer,
	}
}

func placeSecondary(stages []types.ApplicationStage, secondary Dose, split bool) {
	if split {
		if IsNitrogenSource(secondary.Fertilizer) {
			// Even split across the two top dressings
			stages[1].Secondary = stageDose(secondary, 50)
			stages[2].Secondary = stageDose(secondary, 50)
		} else {
			// Establishment-weighted: most of it goes down with the seed
			stages[0].Secondary = stageDose(secondary, 70)
			stages[1].Secondary = stageDose(secondary, 30)
		}
		return
	}

	if IsNitrogenSource(secondary.Fertilizer) {
		stages[1].Secondary = stageDose(secondary, 100)
	} else {
		stages[0].Secondary = stageDose(secondary, 100)
	}
}

func stageDose(d Dose, percentage float64) *types.StageDose {
	return &types.StageDose{
		Fertilizer: d.Fertilizer,
		Quantity:   round1(d.Quantity * percentage / 100),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
