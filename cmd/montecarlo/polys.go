package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kirill77/montecarlo/sobol"
)

// polysCmd lists generated polynomials
var polysCmd = &cobra.Command{
	Use:    "polys",
	Short:  "List the GF(2) polynomials behind the direction numbers",
	PreRun: func(cmd *cobra.Command, args []string) { bindFlags(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		polys, err := sobol.Polynomials(viper.GetInt("count"), !viper.GetBool("irreducible"))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, p := range polys {
			fmt.Fprintf(out, "%3d  s=%d  a=%-3d  %s\n", i+1, p.Degree, p.Coeffs, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(polysCmd)

	flags := polysCmd.Flags()
	flags.IntP("count", "n", sobol.Dimensions-1, "number of polynomials")
	flags.Bool("irreducible", false, "list irreducible instead of primitive polynomials")
}
