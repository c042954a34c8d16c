// Package reactor models an isothermal steady-state plug-flow reactor
// packed with a methanol-synthesis catalyst, integrating species
// concentrations along the bed with a stiff implicit method.
package reactor

import (
	"fmt"
	"math"

	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/Fircar/Kinetics-Optimization/solver"
	"github.com/rollingthunder/differential/ode"
)

// species ordering of the concentration state vector
const (
	SpCO2 = iota
	SpCO
	SpH2
	SpMeOH
	SpH2O
	NSpecies
)

// empirical stabilization bounds; these are tuning constants, not
// physically derived limits
const (
	ConcFloor   = 1e-20 // concentration floor [mol/m³]
	DerivClip   = 1e7   // bound on each concentration derivative
	ContractMin = 0.1   // velocity-correction clip
	ContractMax = 10.0
)

// integration settings; the max internal step L/15 resolves the sharp
// near-inlet gradients
const (
	rtol            = 1e-6
	atol            = 1e-8
	stepDivisor     = 15.
	defaultMaxSteps = 100000
)

// Bed describes the catalyst bed.
type Bed struct {
	Length      float64 // reactor length [m]
	BulkDensity float64 // catalyst bulk density [kg/m³]
	MaxSteps    uint    // internal step cap, 0 for default
}

// Conditions is one reactor operating point.
type Conditions struct {
	TempK    float64           // isothermal bed temperature [K]
	Velocity float64           // inlet superficial gas velocity [m/s]
	Inlet    [NSpecies]float64 // inlet concentrations [mol/m³]
}

// Exit carries the integrated outlet state. Contraction and Velocity
// are the diagnostics needed by molar-flow-based objectives.
type Exit struct {
	Pressures   [NSpecies]float64 // outlet partial pressures [Pa]
	Conc        [NSpecies]float64 // outlet concentrations [mol/m³]
	Contraction float64           // total-mole contraction factor at the outlet
	Velocity    float64           // corrected outlet superficial velocity [m/s]
}

// InletConcentrations converts inlet partial pressures [Pa] to molar
// concentrations by the ideal-gas relation.
func InletConcentrations(p [NSpecies]float64, tk float64) [NSpecies]float64 {
	var c [NSpecies]float64
	for i, v := range p {
		c[i] = v / (kin.RGas * tk)
	}
	return c
}

func clipDeriv(d float64) float64 {
	if d > DerivClip {
		return DerivClip
	}
	if d < -DerivClip {
		return -DerivClip
	}
	return d
}

func contraction(ctot0, ctot float64) float64 {
	f := ctot0 / math.Max(ctot, ConcFloor)
	if f < ContractMin {
		return ContractMin
	}
	if f > ContractMax {
		return ContractMax
	}
	return f
}

// Solve integrates the bed and returns the outlet partial pressures
// [Pa]. A solver failure is returned as an error, never as a degraded
// state.
func (b Bed) Solve(cmb kin.Combination, par kin.Params, cond Conditions) ([NSpecies]float64, error) {
	x, err := b.SolveExtended(cmb, par, cond)
	return x.Pressures, err
}

// SolveExtended is Solve plus the outlet contraction factor and
// corrected outlet velocity.
func (b Bed) SolveExtended(cmb kin.Combination, par kin.Params, cond Conditions) (Exit, error) {
	y := make([]float64, NSpecies)
	ctot0 := 0.
	for i, v := range cond.Inlet {
		y[i] = v
		ctot0 += v
	}
	rt := kin.RGas * cond.TempK

	fcn := func(z float64, y, dy []float64) {
		var cc [NSpecies]float64
		ctot := 0.
		for i := range cc {
			cc[i] = math.Max(y[i], ConcFloor)
			ctot += cc[i]
		}
		p := kin.Pressures{
			CO2:  cc[SpCO2] * rt,
			CO:   cc[SpCO] * rt,
			H2:   cc[SpH2] * rt,
			MeOH: cc[SpMeOH] * rt,
			H2O:  cc[SpH2O] * rt,
		}
		r := cmb.Rates(par, cond.TempK, p)

		// local superficial velocity corrected for gas-mole contraction
		u := cond.Velocity * contraction(ctot0, ctot)
		s := b.BulkDensity / u

		// net formation by fixed stoichiometry: methanol synthesis and
		// methanol-from-CO each consume 2 mol gas per mol MeOH, RWGS is
		// mole-neutral
		dy[SpCO2] = clipDeriv(s * (-r[0] - r[1]))
		dy[SpCO] = clipDeriv(s * (r[1] - r[2]))
		dy[SpH2] = clipDeriv(s * (-3.*r[0] - r[1] - 2.*r[2]))
		dy[SpMeOH] = clipDeriv(s * (r[0] + r[2]))
		dy[SpH2O] = clipDeriv(s * (r[0] + r[1]))
	}

	maxSteps := b.MaxSteps
	if maxSteps == 0 {
		maxSteps = defaultMaxSteps
	}
	cfg := &ode.Config{
		Fcn:               fcn,
		AbsoluteTolerance: atol,
		RelativeTolerance: rtol,
		MaxStepSize:       b.Length / stepDivisor,
		MaxStepCount:      maxSteps,
	}
	if _, err := solver.NewRosenbrock().Integrate(0., b.Length, y, cfg); err != nil {
		return Exit{}, fmt.Errorf(" reactor.SolveExtended: %v", err)
	}

	var x Exit
	ctot := 0.
	for i := range x.Conc {
		x.Conc[i] = math.Max(y[i], ConcFloor)
		ctot += x.Conc[i]
		x.Pressures[i] = x.Conc[i] * rt
	}
	x.Contraction = contraction(ctot0, ctot)
	x.Velocity = cond.Velocity * x.Contraction
	return x, nil
}
