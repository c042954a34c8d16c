package objective

import (
	"math"
	"testing"

	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/Fircar/Kinetics-Optimization/reactor"
)

func testDataset() *Dataset {
	return &Dataset{
		TempK:    []float64{493.},
		Velocity: []float64{.5},
		Inlet:    [][reactor.NSpecies]float64{{1e5, .5e5, 10e5, 0., 0.}},
		Exit:     [][reactor.NSpecies]float64{{.9e5, .45e5, 9.4e5, .08e5, .09e5}},
		RateMeOH: []float64{1.2e-4},
		RateH2O:  []float64{1.4e-4},
	}
}

func testEvaluator(s Strategy) *Evaluator {
	cmb, _ := kin.NewCombination(2, 1, 3)
	return &Evaluator{
		Data:         testDataset(),
		Bed:          reactor.Bed{Length: .15, BulkDensity: 1100.},
		Comb:         cmb,
		Strat:        s,
		CrossSection: 2e-4,
		CatalystMass: .033,
	}
}

func TestScoreFiniteAndDeterministic(t *testing.T) {
	for _, s := range []Strategy{PartialPressures, FormationRates, Products} {
		ev := testEvaluator(s)
		par := kin.LiteratureGuess()
		f1 := ev.Score(par)
		if math.IsNaN(f1) || math.IsInf(f1, 0) || f1 < 0. {
			t.Fatalf("%v: score %g", s, f1)
		}
		if f2 := ev.Score(par); f2 != f1 {
			t.Errorf("%v: repeated call differs: %g vs %g", s, f1, f2)
		}
	}
}

// the partial-pressure residual is a three-term float sum; its
// accumulation order is fixed, so repeated scoring of the same state
// must agree to the last bit, not merely to a tolerance
func TestPartialPressureScoreBitStable(t *testing.T) {
	ev := testEvaluator(PartialPressures)
	par := kin.LiteratureGuess()
	f0 := ev.Score(par)
	for i := 0; i < 32; i++ {
		if f := ev.Score(par); f != f0 {
			t.Fatalf("repeat %d: %g vs %g", i, f, f0)
		}
	}
}

func TestIntegrationFailureYieldsPenalty(t *testing.T) {
	for _, s := range []Strategy{PartialPressures, FormationRates, Products} {
		ev := testEvaluator(s)
		ev.Bed.MaxSteps = 5 // guaranteed non-convergence
		if f := ev.Score(kin.LiteratureGuess()); f != Penalty {
			t.Errorf("%v: score %g, want exactly %g", s, f, Penalty)
		}
	}
}

func TestNonFiniteParametersYieldPenalty(t *testing.T) {
	ev := testEvaluator(PartialPressures)
	par := kin.LiteratureGuess()
	par.A[2] = math.NaN()
	if f := ev.Score(par); f != Penalty {
		t.Errorf("score %g, want %g", f, Penalty)
	}
	par.A[2] = math.Inf(1)
	if f := ev.Score(par); f != Penalty {
		t.Errorf("score %g, want %g", f, Penalty)
	}
}

func TestQuitAbandonsEvaluation(t *testing.T) {
	ev := testEvaluator(Products)
	ev.Quit = func() bool { return true }
	if f := ev.Score(kin.LiteratureGuess()); f != Penalty {
		t.Errorf("abandoned evaluation scored %g", f)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"partial_pressures", "formation_rates", "products"} {
		s, err := ParseStrategy(name)
		if err != nil {
			t.Fatal(err)
		}
		if s.String() != name {
			t.Errorf("round trip %q -> %q", name, s.String())
		}
	}
	if _, err := ParseStrategy("residuals"); err == nil {
		t.Error("expected configuration error")
	}
}
