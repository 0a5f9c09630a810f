package agronomy

import (
	"strings"
)

// Commercial product names as they appear in recommendations and on the
// Firestore documents the client renders.
const (
	Urea              = "Urea"
	AmmoniumSulfate   = "Ammonium Sulfate"
	AmmoniumPhosphate = "Ammonium Phosphate (16-20-0)"
	Complete141414    = "Complete Fertilizer (14-14-14)"
	Complete161616    = "Complete Fertilizer (16-16-16)"
	MuriateOfPotash   = "Muriate of Potash (0-0-60)"
	SingleSuperphos   = "Single Superphosphate"
	TripleSuperphos   = "Triple Superphosphate"
)

// Composition is a product's guaranteed analysis in percent by mass,
// N-P2O5-K2O convention (oxide basis for P and K).
type Composition struct {
	N float64
	P float64
	K float64
}

// Compositions is the static product reference table.
var Compositions = map[string]Composition{
	Urea:              {N: 46},
	AmmoniumSulfate:   {N: 21},
	AmmoniumPhosphate: {N: 16, P: 20},
	Complete141414:    {N: 14, P: 14, K: 14},
	Complete161616:    {N: 16, P: 16, K: 16},
	MuriateOfPotash:   {K: 60},
	SingleSuperphos:   {P: 18},
	TripleSuperphos:   {P: 46},
}

// Category is the closed set of fertilizer classes the upstream classifier can
// emit. Labels are parsed exactly once, at the engine boundary; nothing past
// that point looks at label text.
type Category string

const (
	CategoryComplete       Category = "complete"
	CategoryNitrogenRich   Category = "nitrogen-rich"
	CategoryPhosphorusRich Category = "phosphorus-rich"
	CategoryPotassiumRich  Category = "potassium-rich"
	CategoryNPMix          Category = "np-mix"
	CategoryNKMix          Category = "nk-mix"
	CategoryPKMix          Category = "pk-mix"
	CategoryBalanced       Category = "balanced-maintenance"
	CategoryUnknown        Category = "unknown"
)

// ParseCategory maps a classifier label onto a Category. The model emits
// descriptive labels like "NPK-rich Complete Fertilizer", so matching is on
// the class marker within the label. Anything unrecognized maps to
// CategoryUnknown, which the selector routes to its documented default branch.
func ParseCategory(label string) Category {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "npk-rich") || strings.Contains(l, "complete"):
		return CategoryComplete
	case strings.Contains(l, "nitrogen-rich"):
		return CategoryNitrogenRich
	case strings.Contains(l, "phosphorus-rich"):
		return CategoryPhosphorusRich
	case strings.Contains(l, "potassium-rich"):
		return CategoryPotassiumRich
	case strings.Contains(l, "np fertilizer") || strings.Contains(l, "np mix"):
		return CategoryNPMix
	case strings.Contains(l, "nk fertilizer") || strings.Contains(l, "nk mix"):
		return CategoryNKMix
	case strings.Contains(l, "pk fertilizer") || strings.Contains(l, "pk mix"):
		return CategoryPKMix
	case strings.Contains(l, "balanced maintenance"):
		return CategoryBalanced
	default:
		return CategoryUnknown
	}
}

// A secondary dose below this is agronomically trivial and not worth a second
// product recommendation.
const secondaryDeficitThreshold = 10.0

// Dose is an unrounded product application rate in kg/ha. Rounding happens
// only when the recommendation is assembled for output.
type Dose struct {
	Fertilizer string
	Quantity   float64
}

// quantityFor sizes a product against a single deficit: kg/ha of product
// needed so that deficit kg/ha of nutrient is supplied at pct percent analysis.
func quantityFor(deficit, pct float64) float64 {
	if pct <= 0 {
		return 0
	}
	return (deficit / pct) * 100
}

// SelectFertilizer picks the primary product for a category and sizes it
// against the adjusted deficits, then adds a single-nutrient secondary when a
// material deficit is left uncovered by the primary.
//
// Multi-nutrient blends are sized by their limiting ratio: the phosphate
// requirement for the N-dominant 16-16-16 and the NP blend (leftover nitrogen
// is carried to Urea), and the largest of the three ratios for the balanced
// 14-14-14 so no nutrient is under-supplied.
func SelectFertilizer(d Deficit, category Category) (Dose, *Dose) {
	switch category {
	case CategoryComplete:
		return selectComplete(d)

	case CategoryNitrogenRich:
		primary := Dose{Urea, quantityFor(d.N, Compositions[Urea].N)}
		// Urea supplies no phosphate, so the whole P2O5 deficit is leftover
		if d.P2O5 > secondaryDeficitThreshold {
			sec := Dose{SingleSuperphos, quantityFor(d.P2O5, Compositions[SingleSuperphos].P)}
			return primary, &sec
		}
		return primary, nil

	case CategoryPhosphorusRich:
		primary := Dose{TripleSuperphos, quantityFor(d.P2O5, Compositions[TripleSuperphos].P)}
		if d.N > secondaryDeficitThreshold {
			sec := Dose{Urea, quantityFor(d.N, Compositions[Urea].N)}
			return primary, &sec
		}
		return primary, nil

	case CategoryPotassiumRich:
		primary := Dose{MuriateOfPotash, quantityFor(d.K2O, Compositions[MuriateOfPotash].K)}
		if d.N > secondaryDeficitThreshold {
			sec := Dose{Urea, quantityFor(d.N, Compositions[Urea].N)}
			return primary, &sec
		}
		return primary, nil

	case CategoryNPMix:
		comp := Compositions[AmmoniumPhosphate]
		primary := Dose{AmmoniumPhosphate, quantityFor(d.P2O5, comp.P)}
		if sec := ureaForLeftoverN(d.N, primary.Quantity, comp.N); sec != nil {
			return primary, sec
		}
		return primary, nil

	default:
		// Documented default branch: unrecognized labels and classes with no
		// decision-table row (NK, PK, balanced maintenance) get the complete
		// blend sized by the average of the three nutrient ratios.
		pct := Compositions[Complete141414].N
		quantity := (quantityFor(d.N, pct) + quantityFor(d.P2O5, pct) + quantityFor(d.K2O, pct)) / 3
		return Dose{Complete141414, quantity}, nil
	}
}

// selectComplete handles the NPK-rich class. Dominance is judged on the
// elemental deficits: a nitrogen-led profile takes the hotter 16-16-16 blend,
// anything else the balanced 14-14-14.
func selectComplete(d Deficit) (Dose, *Dose) {
	if d.N >= d.P && d.N >= d.K {
		comp := Compositions[Complete161616]
		// Phosphate is the limiting ratio for complete blends
		primary := Dose{Complete161616, quantityFor(d.P2O5, comp.P)}
		if sec := ureaForLeftoverN(d.N, primary.Quantity, comp.N); sec != nil {
			return primary, sec
		}
		return primary, nil
	}

	comp := Compositions[Complete141414]
	quantity := quantityFor(d.P2O5, comp.P)
	if q := quantityFor(d.N, comp.N); q > quantity {
		quantity = q
	}
	if q := quantityFor(d.K2O, comp.K); q > quantity {
		quantity = q
	}
	primary := Dose{Complete141414, quantity}
	if sec := ureaForLeftoverN(d.N, primary.Quantity, comp.N); sec != nil {
		return primary, sec
	}
	return primary, nil
}

// ureaForLeftoverN tops up nitrogen the primary dose leaves uncovered, if the
// leftover clears the materiality threshold.
func ureaForLeftoverN(nDeficit, primaryQuantity, primaryNPct float64) *Dose {
	leftover := nDeficit - primaryQuantity*primaryNPct/100
	if leftover > secondaryDeficitThreshold {
		return &Dose{Urea, quantityFor(leftover, Compositions[Urea].N)}
	}
	return nil
}

// IsNitrogenSource reports whether a product is a nitrogen carrier, which
// decides how its dose is weighted across schedule stages. The call looks at
// the composition table, never at the product name.
func IsNitrogenSource(product string) bool {
	return Compositions[product].N > 0
}
