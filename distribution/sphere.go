// Package distribution maps points of the unit cube onto shapes while
// preserving uniformity.
package distribution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	mcmath "github.com/kirill77/montecarlo/internal/math"
)

// SphereVolume maps u from [0,1]^3 to a point inside the unit ball centered
// at the origin. Uniform u yields uniform points: the azimuth is 2π·u.X, the
// cosine of the polar angle is linear in u.Y and the radius is the cube root
// of u.Z. It panics if a component of u lies outside [0, 1].
func SphereVolume(u r3.Vec) r3.Vec {
	check01(u.X, u.Y, u.Z)
	return polar(u.X, u.Y, math.Cbrt(u.Z))
}

// SphereSurface maps (u, v) from [0,1]^2 to a uniformly distributed point on
// the unit sphere.
func SphereSurface(u, v float64) r3.Vec {
	check01(u, v)
	return polar(u, v, 1)
}

func polar(u, v, r float64) r3.Vec {
	phi := u * 2 * math.Pi
	cosTheta := v*2 - 1
	sinTheta := math.Sqrt(math.Max(0, 1-mcmath.Sqr(cosTheta)))
	sinPhi, cosPhi := math.Sincos(phi)

	p := r3.Vec{
		X: r * sinTheta * cosPhi,
		Y: r * sinTheta * sinPhi,
		Z: r * cosTheta,
	}
	if !scalar.EqualWithinAbsOrRel(r3.Norm2(p), mcmath.Sqr(r), mcmath.Epsilon, mcmath.Epsilon) {
		panic(fmt.Sprintf("distribution: |%v|^2 != %v", p, mcmath.Sqr(r)))
	}
	return p
}

func check01(xs ...float64) {
	for _, x := range xs {
		if !mcmath.In01(x) {
			panic(fmt.Sprintf("distribution: input %v outside [0, 1]", x))
		}
	}
}

// Sphere is a ball in 3D space.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// Contains reports whether p lies in the closed ball.
func (s Sphere) Contains(p r3.Vec) bool {
	return r3.Norm2(r3.Sub(p, s.Center)) <= mcmath.Sqr(s.Radius)
}

// FitInside returns s moved towards the origin just far enough to lie within
// the origin-centered ball of radius outer. Spheres already inside are
// returned unchanged. outer must be at least s.Radius.
func (s Sphere) FitInside(outer float64) Sphere {
	dist := r3.Norm(s.Center)
	farthest := dist + s.Radius
	if farthest <= outer {
		return s
	}
	shift := farthest - outer
	s.Center = r3.Scale((dist-shift)/dist, s.Center)
	return s
}
