package agronomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-agronomist/agronomy"
)

func TestCalculateDeficitDoseFractions(t *testing.T) {
	cases := []struct {
		name    string
		n, p, k float64
		want    agronomy.Deficit
	}{
		{
			name: "all low gets full targets",
			n:    50, p: 10, k: 40,
			want: agronomy.Deficit{N: 120, P: 60, P2O5: 137.4, K: 60, K2O: 72},
		},
		{
			name: "all medium gets half targets",
			n:    100, p: 20, k: 100,
			want: agronomy.Deficit{N: 60, P: 30, P2O5: 68.7, K: 30, K2O: 36},
		},
		{
			name: "all high gets maintenance dose",
			n:    150, p: 40, k: 160,
			want: agronomy.Deficit{N: 12, P: 6, P2O5: 13.74, K: 6, K2O: 7.2},
		},
		{
			name: "mixed levels",
			n:    50, p: 20, k: 160,
			want: agronomy.Deficit{N: 120, P: 30, P2O5: 68.7, K: 6, K2O: 7.2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := agronomy.CalculateDeficit(tc.n, tc.p, tc.k)
			assert.InDelta(t, tc.want.N, got.N, 1e-9)
			assert.InDelta(t, tc.want.P, got.P, 1e-9)
			assert.InDelta(t, tc.want.P2O5, got.P2O5, 1e-9)
			assert.InDelta(t, tc.want.K, got.K, 1e-9)
			assert.InDelta(t, tc.want.K2O, got.K2O, 1e-9)
		})
	}
}

func TestCalculateDeficitNeverNegativeNeverZero(t *testing.T) {
	// Even a saturated soil gets a maintenance dose, so no field is ever zero.
	for _, v := range [][3]float64{{0, 0, 0}, {80, 15, 80}, {140, 30, 150}, {500, 500, 500}} {
		d := agronomy.CalculateDeficit(v[0], v[1], v[2])
		assert.Greater(t, d.N, 0.0)
		assert.Greater(t, d.P, 0.0)
		assert.Greater(t, d.P2O5, 0.0)
		assert.Greater(t, d.K, 0.0)
		assert.Greater(t, d.K2O, 0.0)
	}
}

func TestOxideConversionFactors(t *testing.T) {
	d := agronomy.CalculateDeficit(50, 10, 40)
	assert.InDelta(t, d.P*2.29, d.P2O5, 1e-9)
	assert.InDelta(t, d.K*1.20, d.K2O, 1e-9)
}
