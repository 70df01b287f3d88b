// Package montecarlo estimates integrals with Sobol quasi-random points and
// checks the quality of the points it uses.
//
// The sobol subpackage holds the sequence generator itself. This package
// drives it: SphereVolumeTest is the acceptance check that uniformly mapped
// points fill small spheres inside the unit ball in proportion to their
// volume, Uniformity reports per-dimension statistics, and Integrate averages
// a function over the unit cube.
//
// Basic usage:
//
//	result, err := montecarlo.SphereVolumeTest(montecarlo.DefaultConfig())
//	if err != nil { ... }
//	fmt.Println(result.Passed, result.Mean)
package montecarlo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/kirill77/montecarlo/distribution"
	"github.com/kirill77/montecarlo/internal/parallel"
	"github.com/kirill77/montecarlo/internal/rand"
	"github.com/kirill77/montecarlo/sobol"
)

// Config configures the sphere-volume acceptance test.
type Config struct {
	// PointsPerDim is the cube root of the number of points generated.
	// Default: 32
	PointsPerDim int

	// Spheres is the number of test spheres placed inside the unit ball.
	// Default: 32
	Spheres int

	// SphereRadius is the radius of every test sphere. The default makes a
	// sphere expect PointsPerDim^3 * SphereRadius^3 = 64 points.
	// Default: 4/32
	SphereRadius float64

	// StartIndex is the first Sobol index used. Starting at a multiple of
	// PointsPerDim^3 makes the points one complete block of the sequence.
	// Default: 32768
	StartIndex uint64

	// Mode selects the Sobol update strategy.
	// Default: sobol.Incremental
	Mode sobol.Mode

	// Seed for the pseudo-random sphere placement. 0 seeds from the clock.
	// Default: 42
	Seed uint32

	// MinCount and MaxCount bound the number of points in every sphere.
	// Default: 53, 76
	MinCount, MaxCount int

	// MinMean and MaxMean bound the average number of points per sphere.
	// Default: 62, 65.5
	MinMean, MaxMean float64

	// NumWorkers for counting points per sphere.
	// 0 = auto-detect based on CPU cores.
	// Default: 0
	NumWorkers int

	// Verbose enables progress output.
	// Default: false
	Verbose bool

	// ProgressCallback is called with (done, total) after each block of
	// points mapped into the unit ball.
	// Default: nil
	ProgressCallback func(done, total int)
}

// DefaultConfig returns the acceptance test configuration.
func DefaultConfig() Config {
	return Config{
		PointsPerDim: 32,
		Spheres:      32,
		SphereRadius: 4.0 / 32,
		StartIndex:   32 * 32 * 32,
		Mode:         sobol.Incremental,
		Seed:         42,
		MinCount:     53,
		MaxCount:     76,
		MinMean:      62,
		MaxMean:      65.5,
		NumWorkers:   0,
		Verbose:      false,
	}
}

// Result holds the outcome of SphereVolumeTest.
type Result struct {
	Spheres []distribution.Sphere
	Counts  []int

	// Expected is the count a sphere gets if points are exactly uniform.
	Expected float64
	Mean     float64
	StdDev   float64
	Min, Max float64

	// Failures describes every bound that was violated.
	Failures []string
	Passed   bool
}

// SphereVolumeTest places config.Spheres spheres at pseudo-random positions
// inside the unit ball, maps PointsPerDim^3 Sobol points into the ball with
// distribution.SphereVolume and checks how many land in each sphere.
func SphereVolumeTest(config Config) (*Result, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	var u *rand.Uniform
	if config.Seed == 0 {
		u = rand.NewTimeSeed()
	} else {
		u = rand.New(config.Seed)
	}
	spheres := PlaceSpheres(u, config.Spheres, config.SphereRadius)

	n := config.PointsPerDim * config.PointsPerDim * config.PointsPerDim
	seqConfig := sobol.DefaultConfig()
	seqConfig.Mode = config.Mode
	seqConfig.StartIndex = config.StartIndex
	seq := sobol.New(seqConfig)

	points, err := ballPoints(seq, n, config)
	if err != nil {
		return nil, err
	}

	counts := parallel.Map(len(spheres), parallel.Workers(config.NumWorkers), func(i int) int {
		c := 0
		for _, p := range points {
			if spheres[i].Contains(p) {
				c++
			}
		}
		return c
	})

	result := &Result{
		Spheres:  spheres,
		Counts:   counts,
		Expected: float64(n) * math.Pow(config.SphereRadius, 3),
	}
	result.summarize(config)

	if config.Verbose {
		fmt.Printf("Sphere volume test: mean %.2f (expected %.2f), min %.0f, max %.0f, passed %v\n",
			result.Mean, result.Expected, result.Min, result.Max, result.Passed)
	}
	return result, nil
}

func (c Config) validate() error {
	switch {
	case c.PointsPerDim <= 0:
		return fmt.Errorf("montecarlo: PointsPerDim must be positive, got %d", c.PointsPerDim)
	case c.Spheres <= 0:
		return fmt.Errorf("montecarlo: Spheres must be positive, got %d", c.Spheres)
	case c.SphereRadius <= 0 || c.SphereRadius > 1:
		return fmt.Errorf("montecarlo: SphereRadius must be in (0, 1], got %v", c.SphereRadius)
	case c.StartIndex > sobol.MaxIndex-uint64(c.PointsPerDim)*uint64(c.PointsPerDim)*uint64(c.PointsPerDim):
		return fmt.Errorf("montecarlo: StartIndex %d leaves no room for the points: %w",
			c.StartIndex, sobol.ErrIndexOutOfRange)
	}
	return nil
}

// PlaceSpheres returns n spheres of the given radius, centered uniformly in
// [-1, 1)^3 and then pulled towards the origin until they fit in the unit
// ball.
func PlaceSpheres(u *rand.Uniform, n int, radius float64) []distribution.Sphere {
	spheres := make([]distribution.Sphere, n)
	for i := range spheres {
		s := distribution.Sphere{
			Center: r3.Vec{
				X: u.Between(-1, 1),
				Y: u.Between(-1, 1),
				Z: u.Between(-1, 1),
			},
			Radius: radius,
		}
		spheres[i] = s.FitInside(1)
	}
	return spheres
}

// ballPoints maps n consecutive Sobol points into the unit ball.
func ballPoints(seq *sobol.Sequence, n int, config Config) ([]r3.Vec, error) {
	const block = 4096

	raw, err := Points(seq, n, 3)
	if err != nil {
		return nil, err
	}

	points := make([]r3.Vec, n)
	for i := range points {
		points[i] = distribution.SphereVolume(r3.Vec{X: raw.At(i, 0), Y: raw.At(i, 1), Z: raw.At(i, 2)})
		if config.ProgressCallback != nil && ((i+1)%block == 0 || i+1 == n) {
			config.ProgressCallback(i+1, n)
		}
	}
	return points, nil
}

// Points draws n consecutive points of dims dimensions from seq, one point
// per row.
func Points(seq *sobol.Sequence, n, dims int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("montecarlo: point count must be positive, got %d", n)
	}
	if dims <= 0 || dims > seq.Dimensions() {
		return nil, fmt.Errorf("montecarlo: %d dimensions requested: %w", dims, sobol.ErrDimensionOutOfRange)
	}

	m := mat.NewDense(n, dims, nil)
	for i := 0; i < n; i++ {
		if err := seq.NextAt(m.RawRowView(i)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (r *Result) summarize(config Config) {
	counts := make([]float64, len(r.Counts))
	for i, c := range r.Counts {
		counts[i] = float64(c)
	}
	r.Mean, r.StdDev = stat.MeanStdDev(counts, nil)
	r.Min = floats.Min(counts)
	r.Max = floats.Max(counts)

	for i, c := range r.Counts {
		if c < config.MinCount || c > config.MaxCount {
			r.Failures = append(r.Failures,
				fmt.Sprintf("sphere %d: %d points, want [%d, %d]", i, c, config.MinCount, config.MaxCount))
		}
	}
	if r.Mean < config.MinMean || r.Mean > config.MaxMean {
		r.Failures = append(r.Failures,
			fmt.Sprintf("mean %.3f points per sphere, want [%v, %v]", r.Mean, config.MinMean, config.MaxMean))
	}
	r.Passed = len(r.Failures) == 0
}
