package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kirill77/montecarlo"
)

// spheretestCmd runs the sphere-volume acceptance test
var spheretestCmd = &cobra.Command{
	Use:   "spheretest",
	Short: "Check that Sobol points fill small spheres in proportion to volume",
	Long: `Map points into the unit ball and count how many fall in randomly placed
small spheres. Exits with a non-zero status if any bound is violated. For example:
  montecarlo spheretest --seed 0 --workers 4`,
	PreRun: func(cmd *cobra.Command, args []string) { bindFlags(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := configuredMode()
		if err != nil {
			return err
		}

		config := montecarlo.DefaultConfig()
		config.Mode = mode
		config.Seed = viper.GetUint32("seed")
		config.PointsPerDim = viper.GetInt("points-per-dim")
		config.Spheres = viper.GetInt("spheres")
		config.SphereRadius = viper.GetFloat64("radius") / float64(config.PointsPerDim)
		config.StartIndex = uint64(config.PointsPerDim) * uint64(config.PointsPerDim) * uint64(config.PointsPerDim)
		if viper.IsSet("index") {
			config.StartIndex = viper.GetUint64("index")
		}
		config.NumWorkers = viper.GetInt("workers")
		config.Verbose = viper.GetBool("verbose")
		if config.Verbose {
			config.ProgressCallback = func(done, total int) {
				log.Printf("Mapped %d/%d points", done, total)
			}
		}

		result, err := montecarlo.SphereVolumeTest(config)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, c := range result.Counts {
			fmt.Fprintf(out, "sphere %2d  center %+.3f %+.3f %+.3f  points %d\n",
				i, result.Spheres[i].Center.X, result.Spheres[i].Center.Y, result.Spheres[i].Center.Z, c)
		}
		fmt.Fprintf(out, "mean %.3f  stddev %.3f  expected %.3f\n", result.Mean, result.StdDev, result.Expected)

		if !result.Passed {
			for _, f := range result.Failures {
				log.Println(f)
			}
			return fmt.Errorf("sphere volume test failed with %d violations", len(result.Failures))
		}
		fmt.Fprintln(out, "PASS")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spheretestCmd)

	defaults := montecarlo.DefaultConfig()
	flags := spheretestCmd.Flags()
	flags.Uint32("seed", defaults.Seed, "sphere placement seed (0 uses the clock)")
	flags.Int("points-per-dim", defaults.PointsPerDim, "cube root of the number of points")
	flags.Int("spheres", defaults.Spheres, "number of test spheres")
	flags.Float64("radius", 4, "sphere radius in units of 1/points-per-dim")
	flags.Uint64("index", 0, "first Sobol index (default points-per-dim^3)")
	flags.IntP("workers", "w", 0, "counting workers (0 = number of CPUs)")
}
