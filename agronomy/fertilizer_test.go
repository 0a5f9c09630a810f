package agronomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agronomist/agronomy"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		label string
		want  agronomy.Category
	}{
		{"NPK-rich Complete Fertilizer", agronomy.CategoryComplete},
		{"Complete Fertilizer", agronomy.CategoryComplete},
		{"Nitrogen-rich Fertilizer", agronomy.CategoryNitrogenRich},
		{"Phosphorus-rich Fertilizer", agronomy.CategoryPhosphorusRich},
		{"Potassium-rich Fertilizer", agronomy.CategoryPotassiumRich},
		{"NP Fertilizer", agronomy.CategoryNPMix},
		{"NK Fertilizer", agronomy.CategoryNKMix},
		{"PK Fertilizer", agronomy.CategoryPKMix},
		{"Balanced Maintenance Fertilizer", agronomy.CategoryBalanced},
		{"something the model never said", agronomy.CategoryUnknown},
		{"", agronomy.CategoryUnknown},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, agronomy.ParseCategory(tc.label), "label=%q", tc.label)
	}
}

func TestSelectNitrogenRich(t *testing.T) {
	d := agronomy.Deficit{N: 120, P: 60, P2O5: 137.4, K: 60, K2O: 72}

	primary, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryNitrogenRich)

	assert.Equal(t, agronomy.Urea, primary.Fertilizer)
	assert.InDelta(t, (120.0/46)*100, primary.Quantity, 1e-9)
	require.NotNil(t, secondary)
	assert.Equal(t, agronomy.SingleSuperphos, secondary.Fertilizer)
	assert.InDelta(t, (137.4/18)*100, secondary.Quantity, 1e-9)
}

func TestSelectNitrogenRichNoTrivialSecondary(t *testing.T) {
	d := agronomy.Deficit{N: 120, P: 2.6, P2O5: 6, K: 6, K2O: 7.2}

	_, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryNitrogenRich)
	assert.Nil(t, secondary)
}

func TestSelectPhosphorusRich(t *testing.T) {
	d := agronomy.Deficit{N: 120, P: 60, P2O5: 137.4, K: 6, K2O: 7.2}

	primary, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryPhosphorusRich)

	assert.Equal(t, agronomy.TripleSuperphos, primary.Fertilizer)
	assert.InDelta(t, (137.4/46)*100, primary.Quantity, 1e-9)
	require.NotNil(t, secondary)
	assert.Equal(t, agronomy.Urea, secondary.Fertilizer)
	assert.InDelta(t, (120.0/46)*100, secondary.Quantity, 1e-9)
}

func TestSelectPotassiumRich(t *testing.T) {
	d := agronomy.Deficit{N: 120, P: 6, P2O5: 13.74, K: 60, K2O: 72}

	primary, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryPotassiumRich)

	assert.Equal(t, agronomy.MuriateOfPotash, primary.Fertilizer)
	assert.InDelta(t, (72.0/60)*100, primary.Quantity, 1e-9)
	require.NotNil(t, secondary)
	assert.Equal(t, agronomy.Urea, secondary.Fertilizer)
}

func TestSelectPotassiumRichMaterialityThreshold(t *testing.T) {
	// Leftover N of exactly 10 is not material.
	d := agronomy.Deficit{N: 10, P: 6, P2O5: 13.74, K: 60, K2O: 72}

	_, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryPotassiumRich)
	assert.Nil(t, secondary)
}

func TestSelectNPMixCarriesLeftoverNitrogen(t *testing.T) {
	d := agronomy.Deficit{N: 120, P: 30, P2O5: 68.7, K: 6, K2O: 7.2}

	primary, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryNPMix)

	assert.Equal(t, agronomy.AmmoniumPhosphate, primary.Fertilizer)
	assert.InDelta(t, (68.7/20)*100, primary.Quantity, 1e-9) // 343.5

	// The blend supplies 343.5 * 16% = 54.96 kg/ha N; the rest goes to Urea.
	require.NotNil(t, secondary)
	assert.Equal(t, agronomy.Urea, secondary.Fertilizer)
	assert.InDelta(t, ((120-343.5*0.16)/46)*100, secondary.Quantity, 1e-9)
}

func TestSelectCompleteNitrogenDominant(t *testing.T) {
	// Elemental N leads, so the hotter blend is chosen and sized by phosphate.
	d := agronomy.Deficit{N: 120, P: 60, P2O5: 178.62, K: 60, K2O: 72}

	primary, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryComplete)

	assert.Equal(t, agronomy.Complete161616, primary.Fertilizer)
	assert.InDelta(t, (178.62/16)*100, primary.Quantity, 1e-9) // 1116.375
	assert.Nil(t, secondary)                                   // phosphate sizing covers N fully here
}

func TestSelectCompleteNitrogenDominantWithLeftover(t *testing.T) {
	// P well stocked, N depleted: the small phosphate-sized dose leaves most
	// of the N deficit for Urea.
	d := agronomy.Deficit{N: 120, P: 6, P2O5: 13.74, K: 6, K2O: 7.2}

	primary, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryComplete)

	assert.Equal(t, agronomy.Complete161616, primary.Fertilizer)
	assert.InDelta(t, (13.74/16)*100, primary.Quantity, 1e-9) // 85.875
	require.NotNil(t, secondary)
	assert.Equal(t, agronomy.Urea, secondary.Fertilizer)
	assert.InDelta(t, ((120-85.875*0.16)/46)*100, secondary.Quantity, 1e-9)
}

func TestSelectCompleteBalancedUsesLimitingRatio(t *testing.T) {
	// N is not dominant, so 14-14-14 sized by the largest of the three ratios.
	d := agronomy.Deficit{N: 12, P: 60, P2O5: 137.4, K: 60, K2O: 72}

	primary, secondary := agronomy.SelectFertilizer(d, agronomy.CategoryComplete)

	assert.Equal(t, agronomy.Complete141414, primary.Fertilizer)
	assert.InDelta(t, (137.4/14)*100, primary.Quantity, 1e-9)
	assert.Nil(t, secondary)

	// Nothing the blend addresses is under-supplied at that quantity.
	supplied := primary.Quantity * 14 / 100
	assert.GreaterOrEqual(t, supplied, d.N)
	assert.GreaterOrEqual(t, supplied, d.P2O5)
	assert.GreaterOrEqual(t, supplied, d.K2O)
}

func TestSelectDefaultBranch(t *testing.T) {
	d := agronomy.Deficit{N: 12, P: 6, P2O5: 13.74, K: 6, K2O: 7.2}
	wantQuantity := ((12.0/14 + 13.74/14 + 7.2/14) * 100) / 3 // 78.43

	for _, category := range []agronomy.Category{
		agronomy.CategoryUnknown,
		agronomy.CategoryBalanced,
		agronomy.CategoryNKMix,
		agronomy.CategoryPKMix,
	} {
		primary, secondary := agronomy.SelectFertilizer(d, category)
		assert.Equalf(t, agronomy.Complete141414, primary.Fertilizer, "category=%s", category)
		assert.InDeltaf(t, wantQuantity, primary.Quantity, 1e-9, "category=%s", category)
		assert.Nilf(t, secondary, "category=%s", category)
	}
}

func TestIsNitrogenSource(t *testing.T) {
	assert.True(t, agronomy.IsNitrogenSource(agronomy.Urea))
	assert.True(t, agronomy.IsNitrogenSource(agronomy.AmmoniumSulfate))
	assert.True(t, agronomy.IsNitrogenSource(agronomy.AmmoniumPhosphate))
	assert.False(t, agronomy.IsNitrogenSource(agronomy.SingleSuperphos))
	assert.False(t, agronomy.IsNitrogenSource(agronomy.MuriateOfPotash))
}
