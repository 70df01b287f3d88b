// Package math provides float64 helpers shared by the geometry and
// statistics code.
package math

// Epsilon is the absolute and relative tolerance of floating-point
// invariant checks.
const Epsilon = 1e-9

// Sqr returns x*x.
func Sqr(x float64) float64 {
	return x * x
}

// In01 reports whether x lies in the closed unit interval.
func In01(x float64) bool {
	return x >= 0 && x <= 1
}
