package sobol

import (
	"fmt"
)

// toFloat converts a 63-bit accumulator to a float64 in [0, 1). Only the top
// 53 bits are kept so the conversion is exact and never rounds up to 1.
func toFloat(acc uint64) float64 {
	return float64(acc>>(Bits-53)) * 0x1p-53
}

// resetRemainder reloads the extraction state from the current dimension.
func (s *Sequence) resetRemainder() {
	s.product = 1
	s.remainder = toFloat(s.cache[s.dim].value)
	if s.remainder < 0 || s.remainder >= 1 {
		panic(fmt.Sprintf("sobol: remainder %v outside [0, 1)", s.remainder))
	}
}

// NextBounded returns an integer in [min, max).
//
// Successive draws reuse the unconsumed fraction of the current dimension:
// the value is scaled by the range, its integer part returned and its
// fractional part kept for the next draw. Once the product of the ranges
// drawn exceeds the renormalization budget the fraction no longer carries
// enough precision and the sequence moves to the next dimension, wrapping to
// the next index after the last one.
func (s *Sequence) NextBounded(min, max uint32) (uint32, error) {
	if max <= min {
		return 0, fmt.Errorf("range [%d, %d): %w", min, max, ErrEmptyRange)
	}
	r := max - min

	s.remainder *= float64(r)
	v := uint32(s.remainder)
	if v >= r {
		panic(fmt.Sprintf("sobol: bounded draw %d not below range %d", v, r))
	}

	s.product *= uint64(r)
	if s.product > s.budget {
		s.nextDimension()
		return min + v, nil
	}
	s.remainder -= float64(v)
	return min + v, nil
}
