package kinopt

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/Fircar/Kinetics-Optimization/estimate"
	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/Fircar/Kinetics-Optimization/objective"
	"github.com/Fircar/Kinetics-Optimization/reactor"
	"github.com/maseology/mmio"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// Evaluate runs one independent optimization worker per rate-law
// combination and returns the merged results ranked by ascending score.
// Workers share only the read-only dataset and the advisory deadline;
// they communicate solely through the result channel at the end of
// their run.
func Evaluate(cfg *Config) ([]Result, error) {
	strat, combos, err := cfg.check()
	if err != nil {
		return nil, err
	}
	data, err := objective.LoadDataset(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	if cfg.NRuns > 0 && data.Len() != cfg.NRuns {
		return nil, fmt.Errorf("kinopt.Evaluate: dataset holds %d runs, configured for %d", data.Len(), cfg.NRuns)
	}

	var dl *estimate.Deadline
	if cfg.BudgetSeconds > 0. {
		dl = estimate.NewDeadline(time.Duration(cfg.BudgetSeconds * float64(time.Second)))
	}
	bed := reactor.Bed{Length: cfg.ReactorLength, BulkDensity: cfg.BulkDensity}

	fmt.Printf(" fitting %d combinations against %d runs (strategy %s)\n", len(combos), data.Len(), strat)
	tt := mmio.NewTimer()

	var wg sync.WaitGroup
	rch := make(chan Result, len(combos))
	for i, cmb := range combos {
		wg.Add(1)
		go func(i int, cmb kin.Combination) {
			defer wg.Done()
			rch <- runWorker(cfg, bed, data, strat, cmb, dl, int64(i))
		}(i, cmb)
	}
	wg.Wait()
	close(rch)

	res := make([]Result, 0, len(combos))
	for r := range rch {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Score < res[j].Score })
	tt.Lap(fmt.Sprintf("%d workers complete", len(combos)))

	if cfg.OutDir != "" {
		if err := writeSummary(cfg.OutDir, res); err != nil {
			return res, err
		}
		if err := writeDetails(cfg.OutDir, bed, data, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// runWorker owns exactly one rate-law combination for its entire run.
func runWorker(cfg *Config, bed reactor.Bed, data *objective.Dataset, strat objective.Strategy,
	cmb kin.Combination, dl *estimate.Deadline, seed int64) Result {

	ev := &objective.Evaluator{
		Data:         data,
		Bed:          bed,
		Comb:         cmb,
		Strat:        strat,
		CrossSection: cfg.CrossSection,
		CatalystMass: cfg.CatalystMass(),
		Quit:         dl.Exceeded,
	}
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano() + seed)

	drv := &estimate.Driver{
		Obj: func(x []float64) float64 {
			par, err := kin.ParamsFromSlice(x)
			if err != nil {
				return objective.Penalty
			}
			return ev.Score(par)
		},
		Bounds:   estimate.DefaultBounds(),
		Deadline: dl,
		Rng:      rng,
		Opts: estimate.Options{
			PopSize:    cfg.PopSize,
			MaxGen:     cfg.MaxGen,
			RefineIter: cfg.RefineIter,
			RefineEval: cfg.RefineEval,
			Progress:   cfg.Progress,
			Label:      cmb.ID(),
			Report:     30 * time.Second,
		},
	}
	r := drv.Run()
	return Result{
		Comb:        cmb,
		Params:      r.Params,
		Score:       r.Score,
		ElapsedMin:  r.Minutes(),
		TimedOut:    r.DeadlineExceeded,
		Converged:   r.Converged,
		Evaluations: r.Evaluations,
		Stamp:       time.Now(),
	}
}
