// Package objective scores a kinetic parameter set against an
// experimental dataset by running every operating point through the
// plug-flow reactor model and aggregating weighted residuals.
package objective

import (
	"math"

	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/Fircar/Kinetics-Optimization/reactor"
)

// Penalty is the fixed score contribution for an infeasible evaluation:
// a failed integration adds one Penalty per run, a panic or non-finite
// parameter set yields one Penalty for the whole call.
const Penalty = 1e10

// measFloor guards divisions by near-zero measured denominators.
const measFloor = 1e-10

// fixed per-species residual weights; wPartial is ordered so the
// residual sum is accumulated identically on every call
var (
	wPartial = []struct {
		sp int
		w  float64
	}{{reactor.SpCO2, 1.}, {reactor.SpCO, 2.}, {reactor.SpH2O, 3.}}
	wRates     = [2]float64{2., 1.} // methanol, water
	wProducts  = [2]float64{1., 2.} // methanol, water
	prodPFloor = 1.0                // [Pa] floor on measured product pressure
)

// Evaluator scores parameter sets for one fixed rate-law combination
// and one fixed strategy. Quit, when set, is polled once per run so a
// shared deadline can cut a long evaluation short.
type Evaluator struct {
	Data  *Dataset
	Bed   reactor.Bed
	Comb  kin.Combination
	Strat Strategy

	// geometry for the formation-rates strategy
	CrossSection float64 // [m²]
	CatalystMass float64 // [kg]

	Quit func() bool
}

// Score aggregates the per-run residuals for par. Failed runs each
// contribute Penalty and evaluation continues; an unexpected panic
// yields Penalty for the entire call.
func (ev *Evaluator) Score(par kin.Params) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = Penalty
		}
	}()

	if !par.Finite() {
		return Penalty
	}

	for i := 0; i < ev.Data.Len(); i++ {
		if ev.Quit != nil && ev.Quit() {
			return Penalty // abandoned mid-evaluation, cannot win
		}
		score += ev.scoreRun(par, i)
	}
	return score
}

func (ev *Evaluator) scoreRun(par kin.Params, i int) float64 {
	tk := ev.Data.TempK[i]
	cond := reactor.Conditions{
		TempK:    tk,
		Velocity: ev.Data.Velocity[i],
		Inlet:    reactor.InletConcentrations(ev.Data.Inlet[i], tk),
	}

	switch ev.Strat {
	case PartialPressures:
		px, err := ev.Bed.Solve(ev.Comb, par, cond)
		if err != nil {
			return Penalty
		}
		s := 0.
		for _, sw := range wPartial {
			e := (px[sw.sp] - ev.Data.Exit[i][sw.sp]) / math.Max(math.Abs(ev.Data.Exit[i][sw.sp]), measFloor)
			s += sw.w * e * e
		}
		return s

	case FormationRates:
		x, err := ev.Bed.SolveExtended(ev.Comb, par, cond)
		if err != nil {
			return Penalty
		}
		// molar flows at the corrected exit velocity, normalized by
		// catalyst mass to a formation rate [mol s⁻¹ kg⁻¹]
		rate := func(sp int) float64 {
			fin := cond.Inlet[sp] * ev.Data.Velocity[i] * ev.CrossSection
			fex := x.Conc[sp] * x.Velocity * ev.CrossSection
			return (fex - fin) / ev.CatalystMass
		}
		em := (rate(reactor.SpMeOH) - ev.Data.RateMeOH[i]) / math.Max(math.Abs(ev.Data.RateMeOH[i]), measFloor)
		ew := (rate(reactor.SpH2O) - ev.Data.RateH2O[i]) / math.Max(math.Abs(ev.Data.RateH2O[i]), measFloor)
		return wRates[0]*em*em + wRates[1]*ew*ew

	case Products:
		px, err := ev.Bed.Solve(ev.Comb, par, cond)
		if err != nil {
			return Penalty
		}
		em := (px[reactor.SpMeOH] - ev.Data.Exit[i][reactor.SpMeOH]) / math.Max(ev.Data.Exit[i][reactor.SpMeOH], prodPFloor)
		ew := (px[reactor.SpH2O] - ev.Data.Exit[i][reactor.SpH2O]) / math.Max(ev.Data.Exit[i][reactor.SpH2O], prodPFloor)
		return wProducts[0]*em*em + wProducts[1]*ew*ew
	}
	panic("objective.Evaluator: unknown strategy") // unreachable after ParseStrategy
}
