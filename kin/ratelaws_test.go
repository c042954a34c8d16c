package kin

import (
	"math"
	"testing"
)

// equilibriumState builds a pressure set simultaneously at equilibrium
// for all three reactions at temperature tk.
func equilibriumState(tk float64) Pressures {
	p := Pressures{CO2: 1e5, CO: .5e5, H2: 10e5}
	p.H2O = EquilibriumRWGS(tk) * p.CO2 * p.H2 / p.CO
	p.MeOH = EquilibriumMeOHfromCO(tk) * p.CO * p.H2 * p.H2
	return p
}

func TestDrivingForcesVanishAtEquilibrium(t *testing.T) {
	const tk = 493.
	p := equilibriumState(tk)
	keqD, keqR, keqC := EquilibriumMeOHDirect(tk), EquilibriumRWGS(tk), EquilibriumMeOHfromCO(tk)

	for _, cmb := range AllCombinations() {
		dfm := cmb.MeOH.DrivingForce(p, keqD)
		fwd := p.CO2 * math.Pow(p.H2, cmb.MeOH.exponent())
		if math.Abs(dfm) > 1e-8*fwd {
			t.Errorf("%s: methanol driving force %g not ~0 (fwd %g)", cmb.ID(), dfm, fwd)
		}
		dfr := cmb.RWGS.DrivingForce(p, keqR)
		fwd = p.CO2 * math.Pow(p.H2, cmb.RWGS.exponent())
		if math.Abs(dfr) > 1e-8*fwd {
			t.Errorf("%s: RWGS driving force %g not ~0 (fwd %g)", cmb.ID(), dfr, fwd)
		}
		dfc := cmb.CO.DrivingForce(p, keqC)
		fwd = p.CO * math.Pow(p.H2, cmb.CO.exponent())
		if math.Abs(dfc) > 1e-8*fwd {
			t.Errorf("%s: MeOH-from-CO driving force %g not ~0 (fwd %g)", cmb.ID(), dfc, fwd)
		}
	}
}

func TestNetRatesVanishAtEquilibrium(t *testing.T) {
	const tk = 493.
	peq := equilibriumState(tk)
	pne := peq
	pne.H2O, pne.MeOH = 0., 0. // fully displaced from equilibrium
	par := LiteratureGuess()

	for _, cmb := range AllCombinations() {
		req := cmb.Rates(par, tk, peq)
		rne := cmb.Rates(par, tk, pne)
		for i := range req {
			if math.Abs(req[i]) > 1e-6*math.Abs(rne[i])+1e-12 {
				t.Errorf("%s: rate %d = %g at equilibrium (displaced %g)", cmb.ID(), i, req[i], rne[i])
			}
		}
	}
}

func TestCombinationIDRoundTrip(t *testing.T) {
	all := AllCombinations()
	if len(all) != 24 {
		t.Fatalf("expected 24 combinations, got %d", len(all))
	}
	seen := make(map[string]bool, 24)
	for _, cmb := range all {
		id := cmb.ID()
		if seen[id] {
			t.Errorf("duplicate combination id %s", id)
		}
		seen[id] = true
		back, err := ParseCombination(id)
		if err != nil {
			t.Fatalf("ParseCombination(%s): %v", id, err)
		}
		if back != cmb {
			t.Errorf("round trip failed for %s", id)
		}
	}
	for _, bad := range []string{"", "1_2", "0_1_1", "5_1_1", "1_3_1", "1_1_4", "a_b_c"} {
		if _, err := ParseCombination(bad); err == nil {
			t.Errorf("ParseCombination(%q): expected error", bad)
		}
	}
}
