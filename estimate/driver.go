// Package estimate searches the kinetic parameter space with a
// global-then-local driver: differential evolution over a bounded box,
// optionally refined by a derivative-free simplex search, under an
// advisory wall-clock deadline.
package estimate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// penalty mirrors the objective's fixed infeasibility score; the
// driver's parameter screen returns it without invoking the objective.
const penalty = 1e10

// Options tunes the two optimization phases.
type Options struct {
	PopSize  int           // DE population size
	MaxGen   int           // DE generation cap
	F        float64       // DE mutation factor
	CR       float64       // DE crossover probability
	ConvTol  float64       // relative population-spread convergence tolerance
	Report   time.Duration // progress-report cadence, 0 to silence
	Progress bool          // render a progress bar (single-worker runs)
	Label    string        // tag prepended to progress output

	RefineIter int // local-phase iteration cap
	RefineEval int // local-phase function-evaluation cap
}

func (o *Options) setDefaults() {
	if o.PopSize < 5 {
		o.PopSize = 45
	}
	if o.MaxGen <= 0 {
		o.MaxGen = 300
	}
	if o.F <= 0. {
		o.F = .7
	}
	if o.CR <= 0. {
		o.CR = .9
	}
	if o.ConvTol <= 0. {
		o.ConvTol = 1e-8
	}
	if o.RefineIter <= 0 {
		o.RefineIter = 400
	}
	if o.RefineEval <= 0 {
		o.RefineEval = 1000
	}
}

// Result is the terminal state of one driver run.
type Result struct {
	Params           []float64
	Score            float64
	Elapsed          time.Duration
	DeadlineExceeded bool
	Converged        bool
	Evaluations      int
	Generations      int
}

// Minutes returns the elapsed wall-clock time in minutes.
func (r Result) Minutes() float64 { return r.Elapsed.Minutes() }

// Driver owns one optimization run over one fixed objective. Counter
// state is explicit per instance; there is no ambient global state.
type Driver struct {
	Obj      func([]float64) float64
	Bounds   Bounds
	Deadline *Deadline
	Rng      *rand.Rand
	Opts     Options

	evals, gens int
}

// Run executes the global phase and, when it succeeds inside the
// budget, the local refinement; the refined vector replaces the global
// one only when strictly better. A panic anywhere in the run is
// absorbed into an infinite score so one worker cannot take down the
// process group.
func (d *Driver) Run() (res Result) {
	t0 := time.Now()
	defer func() {
		if rc := recover(); rc != nil {
			fmt.Printf(" estimate.Driver.Run: recovered: %v\n", rc)
			res = Result{
				Score:            math.Inf(1),
				Elapsed:          time.Since(t0),
				DeadlineExceeded: d.Deadline.Exceeded(),
				Evaluations:      d.evals,
				Generations:      d.gens,
			}
		}
	}()

	d.Opts.setDefaults()
	if d.Rng == nil {
		d.Rng = rand.New(mrg63k3a.New())
		d.Rng.Seed(time.Now().UnixNano())
	}

	best, fbest, ok, converged := d.global()
	res = Result{
		Params:           best,
		Score:            fbest,
		Elapsed:          time.Since(t0),
		DeadlineExceeded: d.Deadline.Exceeded(),
		Converged:        converged,
		Evaluations:      d.evals,
		Generations:      d.gens,
	}
	if !ok {
		res.Score = math.Inf(1)
		return
	}
	if res.DeadlineExceeded {
		return // keep best-found-so-far, skip refinement
	}

	if xr, fr, err := refine(d.score, best, d.Opts); err != nil {
		fmt.Printf(" estimate.Driver.Run: refinement abandoned: %v\n", err)
	} else if fr < fbest {
		res.Params, res.Score = xr, fr
	}
	res.Elapsed = time.Since(t0)
	res.Evaluations = d.evals
	return
}
