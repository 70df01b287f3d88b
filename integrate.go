package montecarlo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kirill77/montecarlo/sobol"
)

// Integrate estimates the integral of f over the unit cube [0,1)^dims with n
// Sobol points. The sequence starts at the index PrepareForIntegration picks
// for dims, so integrals of different dimensionality use different points.
func Integrate(f func(x []float64) float64, dims, n int, mode sobol.Mode) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("montecarlo: point count must be positive, got %d", n)
	}

	config := sobol.DefaultConfig()
	config.Mode = mode
	seq := sobol.New(config)
	if err := seq.PrepareForIntegration(dims); err != nil {
		return 0, err
	}

	values := make([]float64, n)
	x := make([]float64, dims)
	for i := range values {
		if err := seq.NextAt(x); err != nil {
			return 0, err
		}
		values[i] = f(x)
	}
	return floats.Sum(values) / float64(n), nil
}

// BallVolume estimates the volume of the unit ball (4π/3) by counting the
// Sobol points of [-1, 1)^3 that fall inside it.
func BallVolume(n int, mode sobol.Mode) (float64, error) {
	frac, err := Integrate(func(x []float64) float64 {
		var r2 float64
		for _, v := range x {
			c := 2*v - 1
			r2 += c * c
		}
		if r2 <= 1 {
			return 1
		}
		return 0
	}, 3, n, mode)
	return 8 * frac, err
}

// BallVolumeExact is the volume of the unit ball.
const BallVolumeExact = 4 * math.Pi / 3
