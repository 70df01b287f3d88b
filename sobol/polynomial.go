package sobol

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxDegree is the highest polynomial degree searched when generating
// polynomials. Degree 7 is enough to supply the 31 primitive polynomials
// needed by dimensions 1..31.
const MaxDegree = 7

// Polynomial is a polynomial over GF(2) of the form
//
//	x^s + a_1 x^(s-1) + ... + a_(s-1) x + 1
//
// Degree is s and Coeffs packs the interior coefficients a_1..a_(s-1),
// most significant first, in the same layout as the Joe-Kuo tables.
type Polynomial struct {
	Degree int
	Coeffs uint32
}

// Word returns the full coefficient bit pattern, including the leading and
// constant terms.
func (p Polynomial) Word() uint32 {
	return 1<<uint(p.Degree) | p.Coeffs<<1 | 1
}

// String formats the polynomial as e.g. "x^3 + x + 1".
func (p Polynomial) String() string {
	w := p.Word()
	var terms []string
	for k := p.Degree; k >= 0; k-- {
		if w&(1<<uint(k)) == 0 {
			continue
		}
		switch k {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", k))
		}
	}
	return strings.Join(terms, " + ")
}

// order returns the multiplicative order of x modulo p, or 0 when x is not
// invertible within 2^s - 1 steps.
func (p Polynomial) order() int {
	w := p.Word()
	top := uint32(1) << uint(p.Degree)
	period := int(top) - 1

	r := uint32(1)
	for k := 1; k <= period; k++ {
		r <<= 1
		if r&top != 0 {
			r ^= w
		}
		if r == 1 {
			return k
		}
	}
	return 0
}

// IsPrimitive reports whether p is primitive, i.e. x generates the full
// multiplicative group of GF(2)[x]/p.
func IsPrimitive(p Polynomial) bool {
	if p.Degree < 1 {
		return false
	}
	return p.order() == 1<<uint(p.Degree)-1
}

// IsIrreducible reports whether p has no factor of degree 1..s/2.
func IsIrreducible(p Polynomial) bool {
	if p.Degree < 1 {
		return false
	}
	w := p.Word()
	for deg := 1; deg <= p.Degree/2; deg++ {
		for d := uint32(1) << uint(deg); d < 1<<uint(deg+1); d++ {
			if gf2Mod(w, d) == 0 {
				return false
			}
		}
	}
	return true
}

// gf2Mod returns a mod b for polynomials packed into bit patterns.
func gf2Mod(a, b uint32) uint32 {
	db := bits.Len32(b)
	for {
		da := bits.Len32(a)
		if da < db {
			return a
		}
		a ^= b << uint(da-db)
	}
}

// Polynomials returns the first n primitive (or merely irreducible)
// polynomials over GF(2), ordered by degree and then by Coeffs. It fails if
// fewer than n such polynomials exist up to MaxDegree.
func Polynomials(n int, primitive bool) ([]Polynomial, error) {
	test := IsIrreducible
	if primitive {
		test = IsPrimitive
	}

	result := make([]Polynomial, 0, n)
	for deg := 1; deg <= MaxDegree && len(result) < n; deg++ {
		for a := uint32(0); a < 1<<uint(deg-1) && len(result) < n; a++ {
			p := Polynomial{Degree: deg, Coeffs: a}
			if test(p) {
				result = append(result, p)
			}
		}
	}

	if len(result) < n {
		return result, fmt.Errorf("found %d of %d polynomials up to degree %d: %w",
			len(result), n, MaxDegree, ErrPolynomialsExhausted)
	}
	return result, nil
}
