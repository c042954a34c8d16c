package main

import (
	"fmt"

	"github.com/Fircar/Kinetics-Optimization/kin"
	"github.com/spf13/cobra"
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List the candidate rate-law combinations",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range kin.AllCombinations() {
			fmt.Println(c.ID())
		}
	},
}

func init() {
	rootCmd.AddCommand(combosCmd)
}
