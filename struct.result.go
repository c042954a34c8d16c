package kinopt

import (
	"time"

	"github.com/Fircar/Kinetics-Optimization/kin"
)

// Result is one worker's summary record: the best parameter vector
// found for its assigned rate-law combination, its score and timing.
type Result struct {
	Comb        kin.Combination
	Params      []float64 // best 14-vector, nil when nothing was scored
	Score       float64
	ElapsedMin  float64
	TimedOut    bool
	Converged   bool
	Evaluations int
	Stamp       time.Time
}
