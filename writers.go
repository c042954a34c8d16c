package kinopt

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/Fircar/Kinetics-Optimization/objective"
	"github.com/Fircar/Kinetics-Optimization/reactor"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

const stampFormat = "2006-01-02 15:04:05"

// writeSummary persists the merged ranking, ascending by score.
func writeSummary(dir string, res []Result) error {
	mmio.MakeDir(dir)
	csvw := mmio.NewCSVwriter(filepath.Join(dir, "summary.csv"))
	defer csvw.Close()
	if err := csvw.WriteHead("rank,combination,score,elapsed_min,timed_out,converged,evaluations,timestamp," +
		"A1,A2,A3,E1,E2,E3,B1,B2,B3,B4,H1,H2,H3,H4"); err != nil {
		return fmt.Errorf(" kinopt.writeSummary: %v", err)
	}
	for i, r := range res {
		vals := []interface{}{i + 1, r.Comb.ID(), r.Score, r.ElapsedMin, r.TimedOut, r.Converged, r.Evaluations, r.Stamp.Format(stampFormat)}
		for j := 0; j < kin.NParams; j++ {
			if r.Params == nil {
				vals = append(vals, math.NaN())
			} else {
				vals = append(vals, r.Params[j])
			}
		}
		csvw.WriteLine(vals...)
	}
	return nil
}

// writeDetails persists the per-run model-vs-measured exit pressures of
// every ranked parameter set and prints goodness-of-fit diagnostics on
// the product species.
func writeDetails(dir string, bed reactor.Bed, data *objective.Dataset, res []Result) error {
	mmio.MakeDir(dir)
	csvw := mmio.NewCSVwriter(filepath.Join(dir, "details.csv"))
	defer csvw.Close()
	if err := csvw.WriteHead("combination,run,T_K,u_mps," +
		"mCO2,oCO2,mCO,oCO,mH2,oH2,mMeOH,oMeOH,mH2O,oH2O"); err != nil {
		return fmt.Errorf(" kinopt.writeDetails: %v", err)
	}

	for _, r := range res {
		if r.Params == nil {
			continue
		}
		par, err := kin.ParamsFromSlice(r.Params)
		if err != nil {
			continue
		}
		obs, sim := make([]float64, 0, 2*data.Len()), make([]float64, 0, 2*data.Len())
		for i := 0; i < data.Len(); i++ {
			cond := reactor.Conditions{
				TempK:    data.TempK[i],
				Velocity: data.Velocity[i],
				Inlet:    reactor.InletConcentrations(data.Inlet[i], data.TempK[i]),
			}
			px, err := bed.Solve(r.Comb, par, cond)
			if err != nil {
				fmt.Printf(" %s run %d: %v\n", r.Comb.ID(), i, err)
				continue
			}
			csvw.WriteLine(r.Comb.ID(), i, data.TempK[i], data.Velocity[i],
				px[reactor.SpCO2], data.Exit[i][reactor.SpCO2],
				px[reactor.SpCO], data.Exit[i][reactor.SpCO],
				px[reactor.SpH2], data.Exit[i][reactor.SpH2],
				px[reactor.SpMeOH], data.Exit[i][reactor.SpMeOH],
				px[reactor.SpH2O], data.Exit[i][reactor.SpH2O])
			obs = append(obs, data.Exit[i][reactor.SpMeOH], data.Exit[i][reactor.SpH2O])
			sim = append(sim, px[reactor.SpMeOH], px[reactor.SpH2O])
		}
		if len(obs) > 1 {
			fmt.Printf(" %s products fit: KGE %.3f  NSE %.3f  RMSE %.4g  bias %.3f\n",
				r.Comb.ID(), objfunc.KGE(obs, sim), objfunc.NSE(obs, sim), objfunc.RMSE(obs, sim), objfunc.Bias(obs, sim))
		}
	}
	return nil
}
