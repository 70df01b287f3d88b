package montecarlo

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kirill77/montecarlo/sobol"
)

// DimensionStats summarizes the values one dimension took.
type DimensionStats struct {
	Dim  int
	Mean float64
	// KS is the Kolmogorov-Smirnov distance to the uniform distribution.
	KS float64
	// ChiSquare compares bucket counts against equal expected counts.
	ChiSquare float64
}

// UniformityReport is the outcome of Uniformity.
type UniformityReport struct {
	Dims []DimensionStats
	// MaxCovariance is the largest absolute covariance between two different
	// dimensions. Independent uniform dimensions have covariance 0 and
	// variance 1/12.
	MaxCovariance float64
}

// Uniformity draws n points of dims dimensions starting at index start and
// measures how uniform each dimension is, using buckets equal-width
// histogram buckets for the chi-square statistic.
func Uniformity(start uint64, n, dims, buckets int, mode sobol.Mode) (*UniformityReport, error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("montecarlo: bucket count must be positive, got %d", buckets)
	}

	config := sobol.DefaultConfig()
	config.Mode = mode
	config.StartIndex = start
	seq := sobol.New(config)

	points, err := Points(seq, n, dims)
	if err != nil {
		return nil, err
	}

	u := distuv.Uniform{Min: 0, Max: 1}
	ref := make([]float64, n)
	for i := range ref {
		ref[i] = u.Quantile((float64(i) + 0.5) / float64(n))
	}
	expected := make([]float64, buckets)
	for b := range expected {
		expected[b] = float64(n) / float64(buckets)
	}

	// Values are below 1, so the last bucket is [1-1/buckets, 1).
	dividers := floats.Span(make([]float64, buckets+1), 0, 1)
	dividers[buckets] = 1

	report := &UniformityReport{Dims: make([]DimensionStats, dims)}
	col := make([]float64, n)
	for d := 0; d < dims; d++ {
		mat.Col(col, d, points)

		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		observed := stat.Histogram(nil, dividers, sorted, nil)
		report.Dims[d] = DimensionStats{
			Dim:       d,
			Mean:      stat.Mean(col, nil),
			KS:        stat.KolmogorovSmirnov(sorted, nil, ref, nil),
			ChiSquare: stat.ChiSquare(observed, expected),
		}
	}

	if dims > 1 {
		var cov mat.SymDense
		stat.CovarianceMatrix(&cov, points, nil)
		for i := 0; i < dims; i++ {
			for j := i + 1; j < dims; j++ {
				report.MaxCovariance = math.Max(report.MaxCovariance, math.Abs(cov.At(i, j)))
			}
		}
	}
	return report, nil
}
