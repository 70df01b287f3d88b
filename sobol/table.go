package sobol

import (
	"fmt"
	"sync"
)

const (
	// Dimensions is the number of dimensions every sequence supports.
	Dimensions = 32
	// Bits is the number of direction numbers per dimension. Accumulators
	// are fixed-point fractions with Bits fractional bits.
	Bits = 63

	// MaxIndex is the largest index whose Gray code fits in Bits bits.
	MaxIndex = uint64(1)<<Bits - 1

	one = uint64(1) << Bits
)

// Table holds the direction numbers for every dimension. Entry [d][k] is
// XORed into dimension d's accumulator when bit k of the Gray-coded index
// flips.
type Table [Dimensions][Bits]uint64

// initialNumbers lists m_1..m_s for dimensions 1..31, taken from the Joe and
// Kuo new-joe-kuo-6.21201 direction numbers. Row length equals the degree of
// the primitive polynomial assigned to that dimension.
var initialNumbers = [Dimensions - 1][]uint64{
	{1},
	{1, 3},
	{1, 3, 1},
	{1, 1, 1},
	{1, 1, 3, 3},
	{1, 3, 5, 13},
	{1, 1, 5, 5, 17},
	{1, 1, 5, 5, 5},
	{1, 1, 7, 11, 19},
	{1, 1, 5, 1, 1},
	{1, 1, 1, 3, 11},
	{1, 3, 5, 5, 31},
	{1, 3, 3, 9, 7, 49},
	{1, 1, 1, 15, 21, 21},
	{1, 3, 1, 13, 27, 49},
	{1, 1, 1, 15, 7, 5},
	{1, 3, 1, 15, 13, 25},
	{1, 1, 5, 5, 19, 61},
	{1, 3, 7, 11, 23, 15, 103},
	{1, 3, 7, 13, 13, 15, 69},
	{1, 1, 3, 13, 7, 35, 63},
	{1, 3, 5, 9, 1, 25, 53},
	{1, 3, 1, 13, 9, 35, 107},
	{1, 3, 1, 5, 27, 61, 31},
	{1, 1, 5, 11, 19, 41, 61},
	{1, 3, 5, 3, 3, 13, 69},
	{1, 1, 7, 13, 1, 19, 1},
	{1, 3, 7, 5, 13, 19, 59},
	{1, 1, 3, 9, 25, 29, 41},
	{1, 3, 5, 13, 23, 1, 55},
	{1, 3, 7, 3, 13, 59, 17},
}

// BuildTable computes the direction numbers from scratch. It is pure and
// deterministic: every call returns an identical table.
func BuildTable() (*Table, error) {
	polys, err := Polynomials(Dimensions-1, true)
	if err != nil {
		return nil, fmt.Errorf("building direction table: %w", err)
	}

	t := new(Table)

	// Dimension 0 is the van der Corput sequence in base 2.
	for k := 0; k < Bits; k++ {
		t[0][k] = uint64(1) << (Bits - 1 - k)
	}

	for d := 1; d < Dimensions; d++ {
		p := polys[d-1]
		m := initialNumbers[d-1]
		if err := checkInitialNumbers(d, p, m); err != nil {
			return nil, fmt.Errorf("building direction table: %w", err)
		}

		s := p.Degree
		v := &t[d]
		for k := 0; k < s; k++ {
			v[k] = m[k] << (Bits - 1 - k)
		}
		for k := s; k < Bits; k++ {
			x := v[k-s] ^ (v[k-s] >> uint(s))
			for j := 1; j < s; j++ {
				if (p.Coeffs>>uint(s-1-j))&1 == 1 {
					x ^= v[k-j]
				}
			}
			v[k] = x
		}
	}

	return t, nil
}

func checkInitialNumbers(d int, p Polynomial, m []uint64) error {
	if len(m) != p.Degree {
		return fmt.Errorf("dimension %d: %d initial numbers for %s: %w",
			d, len(m), p, ErrBadDirectionNumbers)
	}
	for j, mj := range m {
		if mj&1 == 0 || mj >= uint64(1)<<uint(j+1) {
			return fmt.Errorf("dimension %d: m_%d = %d is not odd and below 2^%d: %w",
				d, j+1, mj, j+1, ErrBadDirectionNumbers)
		}
	}
	return nil
}

var shared struct {
	once  sync.Once
	table *Table
}

// SharedTable returns the process-wide direction table, building it on first
// use. Concurrent first callers block until the single build finishes. A
// build failure is a fatal configuration error and panics.
func SharedTable() *Table {
	shared.once.Do(func() {
		shared.table = mustBuildTable()
	})
	return shared.table
}

func mustBuildTable() *Table {
	t, err := BuildTable()
	if err != nil {
		panic(err)
	}
	return t
}

// Sample returns the accumulator of dimension d at index i, computed directly
// from the table.
func (t *Table) Sample(d int, i uint64) uint64 {
	return direct{}.Advance(t, d, 0, 0, i)
}
