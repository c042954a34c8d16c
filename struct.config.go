package kinopt

import (
	"fmt"

	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/Fircar/Kinetics-Optimization/objective"
)

// Config is the full configuration surface of a calibration campaign.
// Check validates it before any computation starts; configuration
// errors fail fast and are never retried.
type Config struct {
	DatasetPath string // experimental-run table
	OutDir      string // output directory, empty to skip persistence

	ReactorLength  float64 // [m]
	BulkDensity    float64 // catalyst bulk density [kg/m³]
	CatalystVolume float64 // [m³]
	CrossSection   float64 // reactor cross-sectional area [m²]

	NRuns         int      // expected dataset size, 0 to accept any
	Strategy      string   // partial_pressures | formation_rates | products
	Combinations  []string // rate-law combination ids, empty for all 24
	BudgetSeconds float64  // shared wall-clock budget, 0 for none

	// optimizer tuning, zero values take the estimate defaults
	PopSize    int
	MaxGen     int
	RefineIter int
	RefineEval int
	Progress   bool // progress bar, sensible for single-combination runs
}

// CatalystMass derives the catalyst mass [kg].
func (c *Config) CatalystMass() float64 { return c.CatalystVolume * c.BulkDensity }

// check validates the configuration and resolves the strategy and the
// worker combination list.
func (c *Config) check() (objective.Strategy, []kin.Combination, error) {
	if c.ReactorLength <= 0. || c.BulkDensity <= 0. || c.CatalystVolume <= 0. || c.CrossSection <= 0. {
		return 0, nil, fmt.Errorf("kinopt.Config: non-positive reactor geometry")
	}
	strat, err := objective.ParseStrategy(c.Strategy)
	if err != nil {
		return 0, nil, err
	}
	if len(c.Combinations) == 0 {
		return strat, kin.AllCombinations(), nil
	}
	combos := make([]kin.Combination, len(c.Combinations))
	seen := make(map[string]bool, len(c.Combinations))
	for i, id := range c.Combinations {
		cmb, err := kin.ParseCombination(id)
		if err != nil {
			return 0, nil, err
		}
		if seen[cmb.ID()] {
			return 0, nil, fmt.Errorf("kinopt.Config: duplicate combination %s", cmb.ID())
		}
		seen[cmb.ID()] = true
		combos[i] = cmb
	}
	return strat, combos, nil
}
