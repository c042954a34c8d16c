package estimate

import (
	"math/rand"
	"time"

	"github.com/maseology/glbopt"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// QuickSCE runs a shuffled-complex-evolution search over the unit
// hypercube, mapped onto the parameter box, as a short reconnaissance
// alternative to the full driver. It shares the driver's candidate
// screening but not its deadline handling, so keep budgets modest.
func (d *Driver) QuickSCE(nComplexes int) ([]float64, float64) {
	d.Opts.setDefaults()
	if d.Rng == nil {
		d.Rng = rand.New(mrg63k3a.New())
		d.Rng.Seed(time.Now().UnixNano())
	}
	gen := func(u []float64) float64 {
		return d.score(d.Bounds.Sample(u))
	}
	uF, fF := glbopt.SCE(nComplexes, d.Bounds.N(), d.Rng, gen, true)
	return d.Bounds.Sample(uF), fF
}
