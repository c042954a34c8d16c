package reactor

import (
	"math"
	"testing"

	"github.com/Fircar/Kinetics-Optimization/kin"
)

func testBed() Bed {
	return Bed{Length: .15, BulkDensity: 1100.}
}

func testConditions() Conditions {
	inlet := [NSpecies]float64{1e5, .5e5, 10e5, 0., 0.}
	return Conditions{
		TempK:    493.,
		Velocity: .5,
		Inlet:    InletConcentrations(inlet, 493.),
	}
}

func testCombination() kin.Combination {
	cmb, _ := kin.NewCombination(2, 1, 3)
	return cmb
}

func TestZeroLengthReturnsInlet(t *testing.T) {
	b := testBed()
	b.Length = 0.
	cond := testConditions()
	p, err := b.Solve(testCombination(), kin.LiteratureGuess(), cond)
	if err != nil {
		t.Fatal(err)
	}
	rt := kin.RGas * cond.TempK
	for i := range p {
		want := math.Max(cond.Inlet[i], ConcFloor) * rt
		if math.Abs(p[i]-want) > 1e-9*math.Max(want, 1.) {
			t.Errorf("species %d: exit %g, want inlet %g", i, p[i], want)
		}
	}
}

func TestSolveRepeatable(t *testing.T) {
	b, cond, cmb, par := testBed(), testConditions(), testCombination(), kin.LiteratureGuess()
	p1, err := b.Solve(cmb, par, cond)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := b.Solve(cmb, par, cond)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Errorf("re-solve not bit-for-bit stable:\n%v\n%v", p1, p2)
	}
}

func TestSolveProducts(t *testing.T) {
	b, cond := testBed(), testConditions()
	x, err := b.SolveExtended(testCombination(), kin.LiteratureGuess(), cond)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range x.Pressures {
		if math.IsNaN(p) || p < 0. {
			t.Fatalf("species %d: bad exit pressure %g", i, p)
		}
	}
	if x.Contraction < ContractMin || x.Contraction > ContractMax {
		t.Errorf("contraction %g outside clip bounds", x.Contraction)
	}
	if x.Velocity <= 0. {
		t.Errorf("exit velocity %g", x.Velocity)
	}
}

func TestStepCapReportsFailure(t *testing.T) {
	b := testBed()
	b.MaxSteps = 5 // cannot traverse the bed with max step L/15
	if _, err := b.Solve(testCombination(), kin.LiteratureGuess(), testConditions()); err == nil {
		t.Error("expected integration failure")
	}
}

func TestExtendedMatchesBasic(t *testing.T) {
	b, cond, cmb, par := testBed(), testConditions(), testCombination(), kin.LiteratureGuess()
	p, err := b.Solve(cmb, par, cond)
	if err != nil {
		t.Fatal(err)
	}
	x, err := b.SolveExtended(cmb, par, cond)
	if err != nil {
		t.Fatal(err)
	}
	if p != x.Pressures {
		t.Error("basic and extended variants disagree on exit pressures")
	}
}
