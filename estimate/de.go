package estimate

import (
	"fmt"
	"math"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/montecarlo/smpln"
)

// overflow screening: an additive penalty proportional to any parameter
// magnitude beyond overflowMag discourages runaway exploration without
// hard-clamping the search
const (
	overflowMag   = 1e12
	overflowScale = 1e-3
)

// score screens a candidate ahead of the objective: non-finite values
// return the fixed penalty without ever touching the rate evaluator.
func (d *Driver) score(x []float64) float64 {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return penalty
		}
	}
	d.evals++
	s := d.Obj(x)
	for _, v := range x {
		if a := math.Abs(v); a > overflowMag {
			s += (a - overflowMag) * overflowScale
		}
	}
	return s
}

// global runs the differential-evolution phase (rand/1/bin) over the
// bounded box. It terminates on population convergence, the generation
// cap, or the deadline; ok reports whether any candidate was scored.
func (d *Driver) global() (best []float64, fbest float64, ok, converged bool) {
	n, o := d.Bounds.N(), &d.Opts
	np := o.PopSize
	fbest = math.Inf(1)

	// Latin-hypercube start population
	pop, fit := make([][]float64, np), make([]float64, np)
	sp := smpln.NewLHC(d.Rng, np, n, false)
	for k := 0; k < np; k++ {
		if d.Deadline.Exceeded() {
			return best, fbest, ok, false
		}
		u := make([]float64, n)
		for j := 0; j < n; j++ {
			u[j] = sp.U[j][k]
		}
		pop[k] = d.Bounds.Sample(u)
		fit[k] = d.score(pop[k])
		if fit[k] < fbest {
			fbest, best = fit[k], append([]float64{}, pop[k]...)
		}
		ok = true
	}

	var bar *uiprogress.Bar
	spread := math.Inf(1)
	if o.Progress {
		uiprogress.Start()
		bar = uiprogress.AddBar(o.MaxGen).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("%s of %.4g", o.Label, fbest)
		})
		defer uiprogress.Stop()
	}

	t0, lastReport := time.Now(), time.Now()
	trial := make([]float64, n)
	for g := 0; g < o.MaxGen; g++ {
		if d.Deadline.Exceeded() {
			return best, fbest, ok, false
		}
		for i := 0; i < np; i++ {
			if d.Deadline.Exceeded() {
				return best, fbest, ok, false
			}
			a, b, c := d.distinct(i, np)
			jr := d.Rng.Intn(n)
			for j := 0; j < n; j++ {
				if j == jr || d.Rng.Float64() < o.CR {
					trial[j] = pop[a][j] + o.F*(pop[b][j]-pop[c][j])
				} else {
					trial[j] = pop[i][j]
				}
			}
			d.Bounds.Clamp(trial)
			if ft := d.score(trial); ft <= fit[i] {
				copy(pop[i], trial)
				fit[i] = ft
				if ft < fbest {
					fbest, best = ft, append([]float64{}, trial...)
				}
			}
		}
		d.gens++
		if bar != nil {
			bar.Incr()
		}

		// convergence measure: relative population spread
		fmin, fmax, fsum := fit[0], fit[0], 0.
		for _, f := range fit {
			fmin, fmax, fsum = math.Min(fmin, f), math.Max(fmax, f), fsum+f
		}
		spread = (fmax - fmin) / math.Max(math.Abs(fsum/float64(np)), 1e-30)
		if spread < o.ConvTol {
			return best, fbest, ok, true
		}

		if o.Report > 0 && time.Since(lastReport) >= o.Report {
			lastReport = time.Now()
			rate := float64(g+1) / time.Since(t0).Seconds()
			rem := time.Duration(float64(o.MaxGen-g-1) / rate * float64(time.Second))
			fmt.Printf(" [%s] generation %d/%d: best %.6g, spread %.2e (%.2f gen/s, ~%v to cap)\n",
				o.Label, g+1, o.MaxGen, fbest, spread, rate, rem.Round(time.Second))
		}
	}
	return best, fbest, ok, spread < o.ConvTol
}

// distinct draws three mutually distinct population indices, all ≠ i.
func (d *Driver) distinct(i, np int) (a, b, c int) {
	for a = d.Rng.Intn(np); a == i; a = d.Rng.Intn(np) {
	}
	for b = d.Rng.Intn(np); b == i || b == a; b = d.Rng.Intn(np) {
	}
	for c = d.Rng.Intn(np); c == i || c == a || c == b; c = d.Rng.Intn(np) {
	}
	return
}
