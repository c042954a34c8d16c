package estimate

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// refine polishes the best global candidate with a derivative-free
// Nelder-Mead simplex under fixed iteration and evaluation caps.
func refine(f func([]float64) float64, x0 []float64, o Options) ([]float64, float64, error) {
	p := optimize.Problem{Func: f}
	s := &optimize.Settings{
		MajorIterations: o.RefineIter,
		FuncEvaluations: o.RefineEval,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Relative:   1e-10,
			Iterations: 30,
		},
	}
	r, err := optimize.Minimize(p, x0, s, &optimize.NelderMead{})
	if err != nil {
		return nil, 0., fmt.Errorf("estimate.refine: %v", err)
	}
	return r.X, r.F, nil
}
