package kin

import "math"

// RGas universal gas constant [J mol⁻¹ K⁻¹]
const RGas = 8.314

// integrated van't Hoff coefficients, ln K = c1/T + c2
// (Graaf et al. correlations converted from log10 form)
const (
	meohCOc1 = 11832.6
	meohCOc2 = -29.0605
	rwgsc1   = -4773.26
	rwgsc2   = 4.6717
)

// EquilibriumMeOHfromCO returns the equilibrium constant of
// CO + 2H₂ ⇌ CH₃OH at temperature tk [K]. tk must be > 0.
func EquilibriumMeOHfromCO(tk float64) float64 {
	return math.Exp(meohCOc1/tk + meohCOc2)
}

// EquilibriumRWGS returns the equilibrium constant of the reverse
// water-gas shift CO₂ + H₂ ⇌ CO + H₂O at temperature tk [K].
func EquilibriumRWGS(tk float64) float64 {
	return math.Exp(rwgsc1/tk + rwgsc2)
}

// EquilibriumMeOHDirect returns the equilibrium constant of the direct
// hydrogenation CO₂ + 3H₂ ⇌ CH₃OH + H₂O; by Hess's law it is exactly the
// product of the two constituent constants.
func EquilibriumMeOHDirect(tk float64) float64 {
	return EquilibriumMeOHfromCO(tk) * EquilibriumRWGS(tk)
}
