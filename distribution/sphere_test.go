package distribution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kirill77/montecarlo/distribution"
	"github.com/kirill77/montecarlo/sobol"
)

func TestSphereVolumeKnownPoints(t *testing.T) {
	tests := []struct {
		in   r3.Vec
		want r3.Vec
	}{
		{r3.Vec{X: 0, Y: 1, Z: 1}, r3.Vec{X: 0, Y: 0, Z: 1}},
		{r3.Vec{X: 0, Y: 0, Z: 1}, r3.Vec{X: 0, Y: 0, Z: -1}},
		{r3.Vec{X: 0, Y: 0.5, Z: 1}, r3.Vec{X: 1, Y: 0, Z: 0}},
		{r3.Vec{X: 0.25, Y: 0.5, Z: 0.125}, r3.Vec{X: 0, Y: 0.5, Z: 0}},
		{r3.Vec{X: 0.5, Y: 0.5, Z: 0}, r3.Vec{}},
	}

	for _, tt := range tests {
		got := distribution.SphereVolume(tt.in)
		assert.InDelta(t, tt.want.X, got.X, 1e-12, "%v", tt.in)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-12, "%v", tt.in)
		assert.InDelta(t, tt.want.Z, got.Z, 1e-12, "%v", tt.in)
	}
}

func TestSphereVolumeRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { distribution.SphereVolume(r3.Vec{X: -0.1}) })
	assert.Panics(t, func() { distribution.SphereVolume(r3.Vec{Z: 1.5}) })
	assert.Panics(t, func() { distribution.SphereSurface(0.5, 2) })
}

func TestSphereVolumeRadialDistribution(t *testing.T) {
	// Uniform points in the ball: P(|p| < r) = r^3.
	const n = 1 << 12
	seq := sobol.New(sobol.DefaultConfig())
	require.NoError(t, seq.SetIndex(n))

	inner := 0
	point := make([]float64, 3)
	for i := 0; i < n; i++ {
		require.NoError(t, seq.NextAt(point))
		p := distribution.SphereVolume(r3.Vec{X: point[0], Y: point[1], Z: point[2]})
		require.LessOrEqual(t, r3.Norm(p), 1+1e-12)
		if r3.Norm(p) < 0.5 {
			inner++
		}
	}
	assert.InDelta(t, n/8, inner, 2)
}

func TestSphereSurfaceOnUnitSphere(t *testing.T) {
	for _, uv := range [][2]float64{{0, 0}, {0.3, 0.7}, {0.99, 0.5}, {1, 1}} {
		p := distribution.SphereSurface(uv[0], uv[1])
		assert.InDelta(t, 1, r3.Norm(p), 1e-12)
	}
}

func TestSphereContains(t *testing.T) {
	s := distribution.Sphere{Center: r3.Vec{X: 0.5}, Radius: 0.25}
	assert.True(t, s.Contains(r3.Vec{X: 0.5}))
	assert.True(t, s.Contains(r3.Vec{X: 0.75}))
	assert.False(t, s.Contains(r3.Vec{X: 0.5, Y: 0.26}))
}

func TestFitInside(t *testing.T) {
	s := distribution.Sphere{Center: r3.Vec{X: 0.6, Y: -0.8}, Radius: 0.125}
	fitted := s.FitInside(1)
	assert.InDelta(t, 1, r3.Norm(fitted.Center)+fitted.Radius, 1e-12)
	// Direction from the origin is preserved.
	assert.InDelta(t, math.Atan2(s.Center.Y, s.Center.X), math.Atan2(fitted.Center.Y, fitted.Center.X), 1e-12)

	inside := distribution.Sphere{Center: r3.Vec{Z: 0.1}, Radius: 0.125}
	assert.Equal(t, inside, inside.FitInside(1))
}
