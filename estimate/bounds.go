package estimate

import (
	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/maseology/mmaths"
)

// Bounds is a per-dimension box; Log marks dimensions sampled on a
// logarithmic scale (the pre-exponential factors span many orders of
// magnitude).
type Bounds struct {
	Lo, Hi []float64
	Log    []bool
}

// N returns the search-space dimension.
func (b Bounds) N() int { return len(b.Lo) }

// DefaultBounds spans the 14-dimensional kinetic parameter box: rate
// and adsorption pre-exponentials 1e-15–1e5 (log scale), activation
// energies 1e3–2e5, adsorption enthalpies signed [−2e5, 0].
func DefaultBounds() Bounds {
	lo := make([]float64, kin.NParams)
	hi := make([]float64, kin.NParams)
	lg := make([]bool, kin.NParams)
	for i := 0; i < 3; i++ { // rate pre-exponentials
		lo[i], hi[i], lg[i] = 1e-15, 1e5, true
	}
	for i := 3; i < 6; i++ { // activation energies
		lo[i], hi[i] = 1e3, 2e5
	}
	for i := 6; i < 10; i++ { // adsorption pre-exponentials
		lo[i], hi[i], lg[i] = 1e-15, 1e5, true
	}
	for i := 10; i < 14; i++ { // adsorption enthalpies
		lo[i], hi[i] = -2e5, 0.
	}
	return Bounds{Lo: lo, Hi: hi, Log: lg}
}

// Sample maps a unit-hypercube point onto the physical box.
func (b Bounds) Sample(u []float64) []float64 {
	x := make([]float64, b.N())
	for i := range x {
		if b.Log[i] {
			x[i] = mmaths.LogLinearTransform(b.Lo[i], b.Hi[i], u[i])
		} else {
			x[i] = mmaths.LinearTransform(b.Lo[i], b.Hi[i], u[i])
		}
	}
	return x
}

// Clamp pulls x back inside the box in place.
func (b Bounds) Clamp(x []float64) {
	for i := range x {
		if x[i] < b.Lo[i] {
			x[i] = b.Lo[i]
		} else if x[i] > b.Hi[i] {
			x[i] = b.Hi[i]
		}
	}
}
