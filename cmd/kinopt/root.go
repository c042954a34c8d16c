package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kinopt",
	Short: "Kinetic rate-law parameter estimation for a methanol-synthesis plug-flow reactor",
	Long: `kinopt fits the 14 kinetic parameters of a mechanistic plug-flow
reactor model against experimental partial-pressure and formation-rate
measurements, independently for each candidate rate-law combination.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./kinopt.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kinopt")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("KINOPT")
	viper.AutomaticEnv()

	viper.SetDefault("reactor_length", .15)
	viper.SetDefault("bulk_density", 1100.)
	viper.SetDefault("catalyst_volume", 3e-5)
	viper.SetDefault("cross_section", 2e-4)
	viper.SetDefault("strategy", "partial_pressures")
	viper.SetDefault("out_dir", "out")

	viper.ReadInConfig() // optional; flags and defaults suffice
}
