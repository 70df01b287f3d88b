package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/kirill77/montecarlo"
	"github.com/kirill77/montecarlo/sobol"
)

// pointsCmd writes Sobol points as CSV
var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Write Sobol points as CSV",
	Long: `Write consecutive Sobol points, one per row, as CSV. For example:
  montecarlo points --count 4096 --dims 3 --index 4096 --output points.csv`,
	PreRun: func(cmd *cobra.Command, args []string) { bindFlags(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := configuredMode()
		if err != nil {
			return err
		}

		config := sobol.DefaultConfig()
		config.Mode = mode
		config.StartIndex = viper.GetUint64("index")
		if config.StartIndex > sobol.MaxIndex {
			return fmt.Errorf("start index %d: %w", config.StartIndex, sobol.ErrIndexOutOfRange)
		}
		seq := sobol.New(config)

		points, err := montecarlo.Points(seq, viper.GetInt("count"), viper.GetInt("dims"))
		if err != nil {
			return err
		}

		output := viper.GetString("output")
		if output == "" || output == "-" {
			return writeCSV(cmd.OutOrStdout(), points)
		}
		if err := saveCSV(output, points); err != nil {
			return err
		}
		if viper.GetBool("verbose") {
			rows, cols := points.Dims()
			log.Printf("Saved %d points of %d dimensions to %s", rows, cols, output)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pointsCmd)

	flags := pointsCmd.Flags()
	flags.IntP("count", "n", 1024, "number of points")
	flags.IntP("dims", "d", 3, "dimensions per point (at most 32)")
	flags.Uint64P("index", "i", sobol.BaseIndex, "index of the first point")
	flags.StringP("output", "o", "", "output CSV file (default stdout)")
}

// saveCSV saves points to a CSV file.
func saveCSV(filename string, points *mat.Dense) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeCSV(file, points)
}

// writeCSV writes one row per point.
func writeCSV(w io.Writer, points *mat.Dense) error {
	writer := csv.NewWriter(w)

	rows, cols := points.Dims()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := range record {
			record[j] = strconv.FormatFloat(points.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
