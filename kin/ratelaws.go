package kin

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numerical floors applied ahead of divisions and fractional powers
const (
	pFloor   = 1e-10 // partial pressure [Pa]
	keqFloor = 1e-10
	denFloor = 1e-10
)

// Pressures are species partial pressures [Pa].
type Pressures struct{ CO2, CO, H2, MeOH, H2O float64 }

// MeOHVariant selects the hydrogen exponent of the methanol-synthesis
// (CO₂ + 3H₂ ⇌ CH₃OH + H₂O) driving force. The exponent is applied
// symmetrically to the forward and reverse legs so the net driving force
// vanishes at chemical equilibrium for every choice.
type MeOHVariant int

// RWGSVariant selects the hydrogen exponent of the reverse water-gas
// shift (CO₂ + H₂ ⇌ CO + H₂O) driving force.
type RWGSVariant int

// COVariant selects the hydrogen exponent of the methanol-from-CO
// (CO + 2H₂ ⇌ CH₃OH) driving force.
type COVariant int

const (
	MeOH1 MeOHVariant = iota + 1 // pH₂ exponent 1.0
	MeOH2                        // 1.5
	MeOH3                        // 2.0
	MeOH4                        // 2.5
)

const (
	RWGS1 RWGSVariant = iota + 1 // pH₂ exponent 0.5
	RWGS2                        // 1.0
)

const (
	CO1 COVariant = iota + 1 // pH₂ exponent 0.5
	CO2                      // 1.0
	CO3                      // 1.5
)

func (v MeOHVariant) exponent() float64 {
	switch v {
	case MeOH1:
		return 1.
	case MeOH2:
		return 1.5
	case MeOH3:
		return 2.
	case MeOH4:
		return 2.5
	}
	panic(fmt.Sprintf("kin.MeOHVariant: invalid variant %d", int(v)))
}

func (v RWGSVariant) exponent() float64 {
	switch v {
	case RWGS1:
		return .5
	case RWGS2:
		return 1.
	}
	panic(fmt.Sprintf("kin.RWGSVariant: invalid variant %d", int(v)))
}

func (v COVariant) exponent() float64 {
	switch v {
	case CO1:
		return .5
	case CO2:
		return 1.
	case CO3:
		return 1.5
	}
	panic(fmt.Sprintf("kin.COVariant: invalid variant %d", int(v)))
}

// DrivingForce evaluates pCO₂·pH₂ⁿ − pMeOH·pH₂O/(K·pH₂³⁻ⁿ); zero at
// equilibrium of the overall stoichiometry CO₂ + 3H₂ ⇌ CH₃OH + H₂O.
func (v MeOHVariant) DrivingForce(p Pressures, keq float64) float64 {
	n, ph2 := v.exponent(), math.Max(p.H2, pFloor)
	return p.CO2*math.Pow(ph2, n) - p.MeOH*p.H2O/(keq*math.Pow(ph2, 3.-n))
}

// DrivingForce evaluates pCO₂·pH₂ᵐ − pCO·pH₂O/(K·pH₂¹⁻ᵐ).
func (v RWGSVariant) DrivingForce(p Pressures, keq float64) float64 {
	m, ph2 := v.exponent(), math.Max(p.H2, pFloor)
	return p.CO2*math.Pow(ph2, m) - p.CO*p.H2O/(keq*math.Pow(ph2, 1.-m))
}

// DrivingForce evaluates pCO·pH₂ᵠ − pMeOH/(K·pH₂²⁻ᵠ).
func (v COVariant) DrivingForce(p Pressures, keq float64) float64 {
	q, ph2 := v.exponent(), math.Max(p.H2, pFloor)
	return p.CO*math.Pow(ph2, q) - p.MeOH/(keq*math.Pow(ph2, 2.-q))
}

// Combination is one choice of driving-force numerator per reaction,
// immutable once constructed. 4×2×3 = 24 valid combinations.
type Combination struct {
	MeOH MeOHVariant
	RWGS RWGSVariant
	CO   COVariant
}

// NewCombination validates the 1-based variant selections.
func NewCombination(m, r, c int) (Combination, error) {
	if m < 1 || m > 4 || r < 1 || r > 2 || c < 1 || c > 3 {
		return Combination{}, fmt.Errorf("kin.NewCombination: invalid selection %d_%d_%d", m, r, c)
	}
	return Combination{MeOHVariant(m), RWGSVariant(r), COVariant(c)}, nil
}

// ID returns the combination identifier, e.g. "2_1_3".
func (cmb Combination) ID() string {
	return fmt.Sprintf("%d_%d_%d", int(cmb.MeOH), int(cmb.RWGS), int(cmb.CO))
}

// ParseCombination inverts ID.
func ParseCombination(id string) (Combination, error) {
	s := strings.Split(id, "_")
	if len(s) != 3 {
		return Combination{}, fmt.Errorf("kin.ParseCombination: malformed id %q", id)
	}
	var v [3]int
	for i, t := range s {
		n, err := strconv.Atoi(t)
		if err != nil {
			return Combination{}, fmt.Errorf("kin.ParseCombination: malformed id %q: %v", id, err)
		}
		v[i] = n
	}
	return NewCombination(v[0], v[1], v[2])
}

// AllCombinations enumerates the full 24-member cross-product in a fixed
// order (methanol variant fastest-changing last).
func AllCombinations() []Combination {
	out := make([]Combination, 0, 24)
	for m := 1; m <= 4; m++ {
		for r := 1; r <= 2; r++ {
			for c := 1; c <= 3; c++ {
				cmb, _ := NewCombination(m, r, c)
				out = append(out, cmb)
			}
		}
	}
	return out
}
