package agronomy

import (
	"fmt"
	"math"

	"go-agronomist/types"
)

// ComputationError is the typed failure the engine surfaces when a pipeline
// stage produces a value it cannot stand behind. The engine never substitutes
// a fallback itself; whether to degrade is the caller's policy.
type ComputationError struct {
	Stage string
	Err   error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("fertilizer engine: %s stage failed: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }

// Recommend runs the full recommendation pipeline: deficit calculation, soil
// adjustment, product selection, schedule allocation, then the independent pH
// amendment. It is a pure function of its inputs; identical reading and label
// always produce an identical recommendation.
//
// The reading is assumed validated (the HTTP binding layer rejects physically
// impossible values); the label may be anything, unrecognized ones take the
// default product branch.
func Recommend(reading types.SensorReading, label string) (types.FertilizerRecommendation, error) {
	deficit := CalculateDeficit(reading.N, reading.P, reading.K)
	adjusted := AdjustForSoilConditions(deficit, reading.Ph, reading.Rainfall)

	primary, secondary := SelectFertilizer(adjusted.Deficit, ParseCategory(label))
	if err := checkDose(primary); err != nil {
		return types.FertilizerRecommendation{}, &ComputationError{Stage: "selection", Err: err}
	}
	if secondary != nil {
		if err := checkDose(*secondary); err != nil {
			return types.FertilizerRecommendation{}, &ComputationError{Stage: "selection", Err: err}
		}
	}

	split := NeedsSplitApplication(adjusted, primary)
	schedule := BuildSchedule(primary, secondary, split)

	rec := types.FertilizerRecommendation{
		Primary:       toDose(primary),
		Schedule:      schedule,
		SoilAmendment: AdviseAmendment(reading.Ph),
	}
	if secondary != nil {
		d := toDose(*secondary)
		rec.Secondary = &d
	}
	return rec, nil
}

func checkDose(d Dose) error {
	if math.IsNaN(d.Quantity) || math.IsInf(d.Quantity, 0) || d.Quantity < 0 {
		return fmt.Errorf("unusable quantity %v for %s", d.Quantity, d.Fertilizer)
	}
	return nil
}

func toDose(d Dose) types.FertilizerDose {
	return types.FertilizerDose{
		Name:     d.Fertilizer,
		Quantity: round1(d.Quantity),
		Unit:     "kg/ha",
	}
}

// Fallback dose used by callers that opt into degraded-mode continuity.
const fallbackQuantity = 250.0

// FallbackRecommendation is the documented degraded-mode output: the complete
// blend at a flat rate on the standard two-stage schedule. Callers substitute
// it explicitly on a ComputationError; the engine never does.
func FallbackRecommendation() types.FertilizerRecommendation {
	primary := Dose{Complete141414, fallbackQuantity}
	return types.FertilizerRecommendation{
		Primary:  toDose(primary),
		Schedule: BuildSchedule(primary, nil, false),
	}
}
