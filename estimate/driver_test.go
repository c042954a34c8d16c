package estimate

import (
	"math"
	"math/rand"
	"testing"
	"time"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

func sphereBounds(n int) Bounds {
	lo, hi := make([]float64, n), make([]float64, n)
	for i := range lo {
		lo[i], hi[i] = -5., 5.
	}
	return Bounds{Lo: lo, Hi: hi, Log: make([]bool, n)}
}

func seededRng(seed int64) *rand.Rand {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	return rng
}

func TestScoreScreensNonFinite(t *testing.T) {
	called := false
	d := &Driver{
		Obj:    func(x []float64) float64 { called = true; return 0. },
		Bounds: sphereBounds(3),
	}
	if f := d.score([]float64{1., math.NaN(), 2.}); f != penalty {
		t.Errorf("NaN candidate scored %g, want %g", f, penalty)
	}
	if f := d.score([]float64{1., math.Inf(-1), 2.}); f != penalty {
		t.Errorf("Inf candidate scored %g, want %g", f, penalty)
	}
	if called {
		t.Error("objective invoked for a non-finite candidate")
	}
}

func TestScoreOverflowPenalty(t *testing.T) {
	d := &Driver{Obj: func(x []float64) float64 { return 1. }, Bounds: sphereBounds(1)}
	f := d.score([]float64{2e12})
	if want := 1. + (2e12-overflowMag)*overflowScale; math.Abs(f-want) > 1e-6*want {
		t.Errorf("overflow score %g, want %g", f, want)
	}
}

func TestElapsedDeadlineSkipsEverything(t *testing.T) {
	calls := 0
	now := time.Unix(100, 0)
	d := &Driver{
		Obj:      func(x []float64) float64 { calls++; return 0. },
		Bounds:   sphereBounds(3),
		Deadline: NewDeadlineAt(time.Unix(50, 0), func() time.Time { return now }),
		Rng:      seededRng(1),
		Opts:     Options{PopSize: 8, MaxGen: 50},
	}
	res := d.Run()
	if calls != 0 {
		t.Errorf("objective called %d times past the deadline", calls)
	}
	if !res.DeadlineExceeded {
		t.Error("deadline flag not set")
	}
	if !math.IsInf(res.Score, 1) {
		t.Errorf("score %g with nothing evaluated", res.Score)
	}
	if res.Generations != 0 {
		t.Errorf("ran %d generations past the deadline", res.Generations)
	}
}

func TestSphereConverges(t *testing.T) {
	obj := func(x []float64) float64 {
		s := 0.
		for _, v := range x {
			s += v * v
		}
		return s
	}
	d := &Driver{
		Obj:    obj,
		Bounds: sphereBounds(3),
		Rng:    seededRng(1234),
		Opts:   Options{PopSize: 14, MaxGen: 80, ConvTol: 1e-14},
	}
	res := d.Run()
	if res.Score > 1e-2 {
		t.Errorf("driver stalled at %g", res.Score)
	}
	if res.Evaluations == 0 || len(res.Params) != 3 {
		t.Error("result not populated")
	}
	if res.DeadlineExceeded {
		t.Error("no deadline was configured")
	}
}

func TestGenerationCapIsNotConvergence(t *testing.T) {
	obj := func(x []float64) float64 {
		s := 0.
		for _, v := range x {
			s += v * v
		}
		return s
	}
	d := &Driver{
		Obj:    obj,
		Bounds: sphereBounds(3),
		Rng:    seededRng(5),
		Opts:   Options{PopSize: 6, MaxGen: 2, ConvTol: 1e-300},
	}
	res := d.Run()
	if res.Converged {
		t.Error("hitting the generation cap reported as convergence")
	}
	if res.Generations != 2 {
		t.Errorf("ran %d generations, want 2", res.Generations)
	}
}

func TestDriverDeterministicUnderSeed(t *testing.T) {
	obj := func(x []float64) float64 {
		s := 0.
		for i, v := range x {
			s += (v - float64(i)) * (v - float64(i))
		}
		return s
	}
	run := func() Result {
		d := &Driver{
			Obj:    obj,
			Bounds: sphereBounds(2),
			Rng:    seededRng(99),
			Opts:   Options{PopSize: 10, MaxGen: 30},
		}
		return d.Run()
	}
	r1, r2 := run(), run()
	if r1.Score != r2.Score {
		t.Errorf("identical seeds diverged: %g vs %g", r1.Score, r2.Score)
	}
}

func TestPanicAbsorbedAsInfiniteScore(t *testing.T) {
	d := &Driver{
		Obj:    func(x []float64) float64 { panic("synthetic failure") },
		Bounds: sphereBounds(2),
		Rng:    seededRng(7),
		Opts:   Options{PopSize: 6, MaxGen: 5},
	}
	res := d.Run()
	if !math.IsInf(res.Score, 1) {
		t.Errorf("panic produced score %g, want +Inf", res.Score)
	}
}
