package main

import (
	"fmt"

	kinopt "github.com/Fircar/Kinetics-Optimization"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fitCmd = &cobra.Command{
	Use:   "fit [dataset.csv]",
	Short: "Fit every configured rate-law combination against a run dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			viper.Set("dataset", args[0])
		}
		cfg := configFromViper()
		if cfg.DatasetPath == "" {
			return fmt.Errorf("no dataset given; pass a CSV path or set dataset in the config")
		}
		res, err := kinopt.Evaluate(cfg)
		if err != nil {
			return err
		}
		fmt.Println(" rank combination      score  elapsed_min")
		for i, r := range res {
			flag := " "
			if r.TimedOut {
				flag = "t"
			}
			fmt.Printf(" %4d %-11s %10.4g %12.2f %s\n", i+1, r.Comb.ID(), r.Score, r.ElapsedMin, flag)
		}
		return nil
	},
}

func configFromViper() *kinopt.Config {
	return &kinopt.Config{
		DatasetPath:    viper.GetString("dataset"),
		OutDir:         viper.GetString("out_dir"),
		ReactorLength:  viper.GetFloat64("reactor_length"),
		BulkDensity:    viper.GetFloat64("bulk_density"),
		CatalystVolume: viper.GetFloat64("catalyst_volume"),
		CrossSection:   viper.GetFloat64("cross_section"),
		NRuns:          viper.GetInt("n_runs"),
		Strategy:       viper.GetString("strategy"),
		Combinations:   viper.GetStringSlice("combinations"),
		BudgetSeconds:  viper.GetFloat64("budget_seconds"),
		PopSize:        viper.GetInt("pop_size"),
		MaxGen:         viper.GetInt("max_gen"),
		RefineIter:     viper.GetInt("refine_iter"),
		RefineEval:     viper.GetInt("refine_eval"),
		Progress:       viper.GetBool("progress"),
	}
}

func init() {
	fitCmd.Flags().String("strategy", "partial_pressures", "objective strategy: partial_pressures, formation_rates or products")
	fitCmd.Flags().StringSlice("combinations", nil, "rate-law combination IDs to fit (default all 24)")
	fitCmd.Flags().Float64("budget-seconds", 0., "wall-clock budget per fit; 0 disables the deadline")
	fitCmd.Flags().String("out-dir", "out", "directory for summary and detail CSVs")
	fitCmd.Flags().Bool("progress", false, "show per-worker progress bars")
	viper.BindPFlag("strategy", fitCmd.Flags().Lookup("strategy"))
	viper.BindPFlag("combinations", fitCmd.Flags().Lookup("combinations"))
	viper.BindPFlag("budget_seconds", fitCmd.Flags().Lookup("budget-seconds"))
	viper.BindPFlag("out_dir", fitCmd.Flags().Lookup("out-dir"))
	viper.BindPFlag("progress", fitCmd.Flags().Lookup("progress"))
	rootCmd.AddCommand(fitCmd)
}
