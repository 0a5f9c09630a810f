package agronomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-agronomist/agronomy"
	"go-agronomist/types"
)

func baseDeficit() agronomy.Deficit {
	return agronomy.Deficit{N: 120, P: 60, P2O5: 137.4, K: 60, K2O: 72}
}

func TestAdjustAcidSoilScalesPhosphate(t *testing.T) {
	adj := agronomy.AdjustForSoilConditions(baseDeficit(), 5.0, 800)

	assert.InDelta(t, 137.4*1.3, adj.Deficit.P2O5, 1e-9)
	assert.InDelta(t, 120, adj.Deficit.N, 1e-9)
	assert.InDelta(t, 72, adj.Deficit.K2O, 1e-9)
	assert.Equal(t, types.PhVeryAcidic, adj.PhModifier)
	assert.False(t, adj.RequiresSplitApplication)
}

func TestAdjustAlkalineSoilScalesPhosphate(t *testing.T) {
	adj := agronomy.AdjustForSoilConditions(baseDeficit(), 8.0, 800)

	assert.InDelta(t, 137.4*1.25, adj.Deficit.P2O5, 1e-9)
	assert.Equal(t, types.PhAlkaline, adj.PhModifier)
}

func TestAdjustExcessiveRainfallScalesNitrogen(t *testing.T) {
	adj := agronomy.AdjustForSoilConditions(baseDeficit(), 6.5, 1400)

	assert.InDelta(t, 120*1.2, adj.Deficit.N, 1e-9)
	assert.InDelta(t, 137.4, adj.Deficit.P2O5, 1e-9)
	assert.Equal(t, types.RainfallExcessive, adj.RainfallModifier)
	assert.False(t, adj.RequiresSplitApplication)
}

func TestAdjustInsufficientRainfallOnlySignalsSplit(t *testing.T) {
	adj := agronomy.AdjustForSoilConditions(baseDeficit(), 6.5, 400)

	// No quantity changes; the condition is a scheduling signal only.
	assert.Equal(t, baseDeficit(), adj.Deficit)
	assert.True(t, adj.RequiresSplitApplication)
	assert.Equal(t, types.RainfallInsufficient, adj.RainfallModifier)
}

func TestAdjustConditionsCompound(t *testing.T) {
	adj := agronomy.AdjustForSoilConditions(baseDeficit(), 5.0, 1400)

	assert.InDelta(t, 137.4*1.3, adj.Deficit.P2O5, 1e-9)
	assert.InDelta(t, 120*1.2, adj.Deficit.N, 1e-9)
}

func TestAdjustNeutralConditionsPassThrough(t *testing.T) {
	adj := agronomy.AdjustForSoilConditions(baseDeficit(), 6.5, 800)

	assert.Equal(t, baseDeficit(), adj.Deficit)
	assert.False(t, adj.RequiresSplitApplication)
	assert.Equal(t, types.PhOptimal, adj.PhModifier)
	assert.Equal(t, types.RainfallOptimal, adj.RainfallModifier)
}

func TestAdjustBoundaryValuesDoNotTrigger(t *testing.T) {
	// 5.5 and 7.5 are inside the untouched band; 1200 and 500 likewise.
	for _, ph := range []float64{5.5, 7.5} {
		adj := agronomy.AdjustForSoilConditions(baseDeficit(), ph, 800)
		assert.Equalf(t, baseDeficit(), adj.Deficit, "ph=%v", ph)
	}
	for _, rainfall := range []float64{500, 1200} {
		adj := agronomy.AdjustForSoilConditions(baseDeficit(), 6.5, rainfall)
		assert.Equalf(t, baseDeficit(), adj.Deficit, "rainfall=%v", rainfall)
		assert.Falsef(t, adj.RequiresSplitApplication, "rainfall=%v", rainfall)
	}
}
