package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kirill77/montecarlo"
)

// integrateCmd estimates the unit ball volume
var integrateCmd = &cobra.Command{
	Use:    "integrate",
	Short:  "Estimate the volume of the unit ball",
	PreRun: func(cmd *cobra.Command, args []string) { bindFlags(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := configuredMode()
		if err != nil {
			return err
		}

		n := viper.GetInt("points")
		v, err := montecarlo.BallVolume(n, mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "points %d  volume %.6f  exact %.6f  error %.2e\n",
			n, v, montecarlo.BallVolumeExact, math.Abs(v-montecarlo.BallVolumeExact))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(integrateCmd)

	integrateCmd.Flags().IntP("points", "n", 1<<16, "number of points")
}
