package sobol

import (
	"fmt"
	"math/bits"
	"strings"
)

// Updater advances a dimension's accumulator. value is the accumulator at
// index from; Advance returns the accumulator at index to.
type Updater interface {
	Advance(t *Table, dim int, value, from, to uint64) uint64
}

// Mode selects the Updater used by a Sequence.
type Mode int

const (
	// Incremental flips one direction number per differing Gray-code bit.
	// A single step costs one XOR.
	Incremental Mode = iota
	// Direct recomputes the accumulator from the Gray code of the target
	// index, ignoring the cached value. It serves as the reference.
	Direct
)

// Modes maps mode names to their Mode.
var Modes = map[string]Mode{
	"incremental": Incremental,
	"gray":        Incremental,
	"direct":      Direct,
	"nogray":      Direct,
}

// ParseMode looks up a mode by name, ignoring case.
func ParseMode(name string) (Mode, error) {
	m, ok := Modes[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("sobol: unknown mode %q", name)
	}
	return m, nil
}

func (m Mode) String() string {
	switch m {
	case Incremental:
		return "incremental"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Updater returns the strategy implementing m.
func (m Mode) Updater() Updater {
	switch m {
	case Incremental:
		return incremental{}
	case Direct:
		return direct{}
	default:
		panic(fmt.Sprintf("sobol: unknown mode %d", int(m)))
	}
}

// gray returns the reflected binary Gray code of i.
func gray(i uint64) uint64 {
	return i ^ (i >> 1)
}

// xorBits XORs the direction numbers of dimension dim selected by mask.
func xorBits(t *Table, dim int, value, mask uint64) uint64 {
	for mask != 0 {
		value ^= t[dim][bits.TrailingZeros64(mask)]
		mask &= mask - 1
	}
	return value
}

type incremental struct{}

func (incremental) Advance(t *Table, dim int, value, from, to uint64) uint64 {
	return xorBits(t, dim, value, gray(from)^gray(to))
}

type direct struct{}

func (direct) Advance(t *Table, dim int, _, _, to uint64) uint64 {
	return xorBits(t, dim, 0, gray(to))
}
