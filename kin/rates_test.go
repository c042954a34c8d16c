package kin

import (
	"math"
	"testing"
)

func TestParamsSliceRoundTrip(t *testing.T) {
	par := LiteratureGuess()
	x := par.Slice()
	if len(x) != NParams {
		t.Fatalf("slice length %d", len(x))
	}
	back, err := ParamsFromSlice(x)
	if err != nil {
		t.Fatal(err)
	}
	if back != par {
		t.Error("slice round trip altered parameters")
	}
	if _, err := ParamsFromSlice(x[:13]); err == nil {
		t.Error("expected length error")
	}
}

func TestParamsFinite(t *testing.T) {
	par := LiteratureGuess()
	if !par.Finite() {
		t.Error("literature guess should be finite")
	}
	par.E[1] = math.NaN()
	if par.Finite() {
		t.Error("NaN activation energy not flagged")
	}
	par.E[1] = math.Inf(1)
	if par.Finite() {
		t.Error("infinite activation energy not flagged")
	}
}

func TestRatesClipped(t *testing.T) {
	par := LiteratureGuess()
	par.A[0] = 1e30 // absurd frequency factor forces the clip
	p := Pressures{CO2: 50e5, CO: 10e5, H2: 60e5}
	r := Combination{MeOH1, RWGS1, CO1}.Rates(par, 493., p)
	if r[0] != rateClip {
		t.Errorf("rate not clipped: %g", r[0])
	}
}

func TestRatesWellPosedAtZeroPressure(t *testing.T) {
	par := LiteratureGuess()
	r := Combination{MeOH4, RWGS2, CO3}.Rates(par, 493., Pressures{})
	for i, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("rate %d not finite at zero pressures: %g", i, v)
		}
	}
}
