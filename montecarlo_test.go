package montecarlo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kirill77/montecarlo/internal/rand"
	"github.com/kirill77/montecarlo/sobol"
)

func TestSphereVolumeTestPasses(t *testing.T) {
	for _, seed := range []uint32{42, 1, 2024, 777} {
		config := DefaultConfig()
		config.Seed = seed

		result, err := SphereVolumeTest(config)
		require.NoError(t, err)

		assert.Len(t, result.Counts, 32)
		assert.InDelta(t, 64, result.Expected, 1e-9)
		assert.True(t, result.Passed, "seed %d: %v", seed, result.Failures)
		assert.GreaterOrEqual(t, result.Min, 53.0)
		assert.LessOrEqual(t, result.Max, 76.0)
		assert.GreaterOrEqual(t, result.Mean, 62.0)
		assert.LessOrEqual(t, result.Mean, 65.5)
	}
}

func TestSphereVolumeTestModesAgree(t *testing.T) {
	config := DefaultConfig()
	config.NumWorkers = 1
	inc, err := SphereVolumeTest(config)
	require.NoError(t, err)

	config.Mode = sobol.Direct
	config.NumWorkers = 4
	dir, err := SphereVolumeTest(config)
	require.NoError(t, err)

	assert.Equal(t, inc.Counts, dir.Counts)
	assert.Equal(t, inc.Spheres, dir.Spheres)
}

func TestSphereVolumeTestReportsFailures(t *testing.T) {
	config := DefaultConfig()
	config.MinCount = 70
	config.MinMean = 100

	result, err := SphereVolumeTest(config)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.NotEmpty(t, result.Failures)
	assert.Contains(t, result.Failures[len(result.Failures)-1], "mean")
}

func TestSphereVolumeTestProgress(t *testing.T) {
	config := DefaultConfig()
	config.PointsPerDim = 16
	config.SphereRadius = 4.0 / 16

	var last, calls int
	config.ProgressCallback = func(done, total int) {
		calls++
		last = done
		assert.Equal(t, 16*16*16, total)
	}
	_, err := SphereVolumeTest(config)
	require.NoError(t, err)
	assert.Equal(t, 16*16*16, last)
	assert.Equal(t, 1, calls)
}

func TestSphereVolumeTestFromIndexZero(t *testing.T) {
	config := DefaultConfig()
	config.PointsPerDim = 16
	config.SphereRadius = 4.0 / 16
	config.StartIndex = 0

	result, err := SphereVolumeTest(config)
	require.NoError(t, err)

	seqConfig := sobol.DefaultConfig()
	seqConfig.StartIndex = 0
	points, err := ballPoints(sobol.New(seqConfig), 16*16*16, config)
	require.NoError(t, err)
	// Index 0 is the origin of the unit cube and maps to the center of the ball.
	assert.Equal(t, r3.Vec{}, points[0])

	for i, s := range result.Spheres {
		want := 0
		for _, p := range points {
			if s.Contains(p) {
				want++
			}
		}
		assert.Equal(t, want, result.Counts[i], "sphere %d", i)
	}
}

func TestSphereVolumeTestValidation(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.PointsPerDim = 0 },
		func(c *Config) { c.Spheres = -1 },
		func(c *Config) { c.SphereRadius = 0 },
		func(c *Config) { c.SphereRadius = 2 },
		func(c *Config) { c.StartIndex = sobol.MaxIndex },
	} {
		config := DefaultConfig()
		mutate(&config)
		_, err := SphereVolumeTest(config)
		assert.Error(t, err)
	}
}

func TestPlaceSpheresInsideUnitBall(t *testing.T) {
	spheres := PlaceSpheres(rand.New(9), 200, 0.125)
	for i, s := range spheres {
		r := math.Sqrt(s.Center.X*s.Center.X + s.Center.Y*s.Center.Y + s.Center.Z*s.Center.Z)
		assert.LessOrEqual(t, r+s.Radius, 1+1e-12, "sphere %d", i)
	}
}

func TestPoints(t *testing.T) {
	seq := sobol.New(sobol.DefaultConfig())
	m, err := Points(seq, 10, 4)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 10, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, uint64(sobol.BaseIndex+10), seq.Index())

	ref := sobol.New(sobol.DefaultConfig())
	for d := 0; d < 4; d++ {
		require.NoError(t, ref.SetDimension(d))
		assert.Equal(t, ref.Value(), m.At(0, d))
	}

	_, err = Points(seq, 0, 3)
	assert.Error(t, err)
	_, err = Points(seq, 5, 33)
	assert.ErrorIs(t, err, sobol.ErrDimensionOutOfRange)
}

func TestIntegrate(t *testing.T) {
	got, err := Integrate(func(x []float64) float64 {
		return x[0] * x[1] * x[2]
	}, 3, 8192, sobol.Incremental)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, got, 1e-3)

	got, err = Integrate(func(x []float64) float64 {
		s := 0.0
		for _, v := range x {
			s += v
		}
		return s
	}, 10, 4096, sobol.Direct)
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-2)

	_, err = Integrate(func([]float64) float64 { return 0 }, 0, 10, sobol.Incremental)
	assert.ErrorIs(t, err, sobol.ErrDimensionOutOfRange)
	_, err = Integrate(func([]float64) float64 { return 0 }, 3, 0, sobol.Incremental)
	assert.Error(t, err)
}

func TestBallVolume(t *testing.T) {
	got, err := BallVolume(1<<14, sobol.Incremental)
	require.NoError(t, err)
	assert.InDelta(t, BallVolumeExact, got, 0.03)
}

func TestUniformity(t *testing.T) {
	report, err := Uniformity(1<<14, 1<<14, 8, 64, sobol.Incremental)
	require.NoError(t, err)
	require.Len(t, report.Dims, 8)

	for _, d := range report.Dims {
		assert.InDelta(t, 0.5, d.Mean, 1e-3, "dim %d", d.Dim)
		assert.Less(t, d.KS, 0.01, "dim %d", d.Dim)
		assert.Zero(t, d.ChiSquare, "dim %d", d.Dim)
	}
	assert.Less(t, report.MaxCovariance, 1e-2)

	_, err = Uniformity(0, 10, 2, 0, sobol.Incremental)
	assert.Error(t, err)
}

func TestUniformityUnevenBuckets(t *testing.T) {
	// Every bucket of a stratified block is within two points of n/buckets.
	for _, buckets := range []int{1, 3, 10, 100} {
		report, err := Uniformity(1<<14, 1<<14, 4, buckets, sobol.Direct)
		require.NoError(t, err)
		for _, d := range report.Dims {
			assert.Less(t, d.ChiSquare, 4*float64(buckets)*float64(buckets)/(1<<14)+1e-9,
				"buckets %d dim %d", buckets, d.Dim)
		}
	}
}

func BenchmarkSphereVolumeTest(b *testing.B) {
	config := DefaultConfig()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = SphereVolumeTest(config)
	}
}
