package kin

import (
	"fmt"
	"math"
)

// NParams is the dimension of the kinetic parameter vector.
const NParams = 14

// rateClip bounds each net rate against solver overshoot during
// transient stiff steps [mol kg⁻¹ s⁻¹].
const rateClip = 1e6

// Params is the 14-value kinetic parameter set in physical units:
// three Arrhenius pre-exponential factors, three activation energies,
// four van't Hoff adsorption pre-exponentials and four adsorption
// enthalpies. Ordering of the flat vector follows the field order below.
type Params struct {
	A [3]float64 // rate pre-exponentials (MeOH synthesis, RWGS, MeOH-from-CO)
	E [3]float64 // activation energies [J/mol]
	B [4]float64 // adsorption pre-exponentials (CO₂, CO, H₂, H₂O)
	H [4]float64 // adsorption enthalpies [J/mol]
}

// ParamsFromSlice maps a flat 14-vector onto Params.
func ParamsFromSlice(x []float64) (Params, error) {
	if len(x) != NParams {
		return Params{}, fmt.Errorf("kin.ParamsFromSlice: need %d values, got %d", NParams, len(x))
	}
	var p Params
	copy(p.A[:], x[:3])
	copy(p.E[:], x[3:6])
	copy(p.B[:], x[6:10])
	copy(p.H[:], x[10:14])
	return p, nil
}

// Slice flattens Params back to the 14-vector.
func (p Params) Slice() []float64 {
	x := make([]float64, 0, NParams)
	x = append(x, p.A[:]...)
	x = append(x, p.E[:]...)
	x = append(x, p.B[:]...)
	return append(x, p.H[:]...)
}

// Finite reports whether every parameter is a finite number.
func (p Params) Finite() bool {
	for _, v := range p.Slice() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LiteratureGuess returns a literature-based starting parameter set
// (Graaf-type kinetics over a Cu/ZnO/Al₂O₃ catalyst).
func LiteratureGuess() Params {
	return Params{
		A: [3]float64{4.89e7, 9.64e11, 1.09e5},
		E: [3]float64{113000., 152900., 87500.},
		B: [4]float64{7.05e-7, 2.16e-5, 1., 6.37e-9},
		H: [4]float64{-61700., -46800., 0., -84000.},
	}
}

func clipRate(r float64) float64 {
	if r > rateClip {
		return rateClip
	}
	if r < -rateClip {
		return -rateClip
	}
	return r
}

// Rates computes the three net reaction rates [mol kg⁻¹ s⁻¹] for
// (methanol synthesis from CO₂, reverse water-gas shift, methanol from
// CO) at temperature tk [K] and partial pressures p [Pa]. All rate and
// adsorption constants are evaluated in place; equilibrium constants and
// the shared adsorption-inhibition denominator are floored to keep the
// expression well-posed as pressures approach zero.
func (cmb Combination) Rates(par Params, tk float64, p Pressures) [3]float64 {
	rt := RGas * tk
	var k [3]float64
	for i := range k {
		k[i] = par.A[i] * math.Exp(-par.E[i]/rt)
	}
	var ka [4]float64 // adsorption constants: CO₂, CO, H₂, H₂O
	for i := range ka {
		ka[i] = par.B[i] * math.Exp(-par.H[i]/rt)
	}

	keqD := math.Max(EquilibriumMeOHDirect(tk), keqFloor)
	keqR := math.Max(EquilibriumRWGS(tk), keqFloor)
	keqC := math.Max(EquilibriumMeOHfromCO(tk), keqFloor)

	// shared denominator (1 + K_CO·pCO + K_CO2·pCO2)(√pH2 + K_w·pH2O)
	// where K_w lumps K_H2O/√K_H2; each factor floored against blow-up
	kw := ka[3] / math.Sqrt(math.Max(ka[2], keqFloor))
	den := math.Max(1.+ka[1]*p.CO+ka[0]*p.CO2, denFloor) *
		math.Max(math.Sqrt(math.Max(p.H2, pFloor))+kw*p.H2O, denFloor)

	return [3]float64{
		clipRate(k[0] * ka[0] * cmb.MeOH.DrivingForce(p, keqD) / den),
		clipRate(k[1] * ka[0] * cmb.RWGS.DrivingForce(p, keqR) / den),
		clipRate(k[2] * ka[1] * cmb.CO.DrivingForce(p, keqC) / den),
	}
}
