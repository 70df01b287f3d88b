// Package sobol generates Sobol low-discrepancy sequences in up to 32
// dimensions.
//
// A Sequence is a cursor over points of the sequence. Each point has
// Dimensions coordinates in [0, 1) which are read one dimension at a time:
//
//	seq := sobol.New(sobol.DefaultConfig())
//	for i := 0; i < n; i++ {
//		x := seq.NextValue()
//		y := seq.NextValue()
//		z := seq.NextValue()
//		// ...
//		seq.NextIndex()
//	}
//
// Accumulators are 63-bit fixed-point fractions built by XORing direction
// numbers selected by the Gray code of the index. In Incremental mode moving
// to the next index costs a single XOR per dimension; Direct mode recomputes
// every accumulator from the table and yields bit-identical results.
//
// A Sequence is not safe for concurrent use. The direction table it reads is
// immutable and may be shared freely.
package sobol

import (
	"fmt"
)

const (
	// BaseIndex is the default starting index of a new Sequence.
	BaseIndex = 2048
	// IndexStride separates the starting indices chosen by
	// PrepareForIntegration for different dimensionalities.
	IndexStride = 1024
	// DefaultRenormalizationBudget bounds the product of ranges drawn from
	// one dimension by NextBounded before moving to the next dimension.
	DefaultRenormalizationBudget = 2048
)

// Config configures a Sequence.
type Config struct {
	// Mode selects the accumulator update strategy.
	// Default: Incremental
	Mode Mode

	// Table supplies the direction numbers. nil uses SharedTable().
	// Default: nil
	Table *Table

	// StartIndex is the index the sequence is positioned at by New.
	// Default: BaseIndex
	StartIndex uint64

	// StrictDimensions makes NextValue panic with ErrDimensionBudget when a
	// point is asked for more than Dimensions values. When false the
	// sequence silently moves on to the next index.
	// Default: true
	StrictDimensions bool

	// RenormalizationBudget is the precision budget of NextBounded.
	// Default: DefaultRenormalizationBudget
	RenormalizationBudget uint64
}

// DefaultConfig returns the default Sequence configuration.
func DefaultConfig() Config {
	return Config{
		Mode:                  Incremental,
		StartIndex:            BaseIndex,
		StrictDimensions:      true,
		RenormalizationBudget: DefaultRenormalizationBudget,
	}
}

// cached is the last accumulator computed for one dimension.
type cached struct {
	value uint64
	index uint64
}

// Sequence is a stateful Sobol sequence generator.
type Sequence struct {
	table   *Table
	mode    Mode
	updater Updater
	strict  bool
	budget  uint64

	index uint64
	dim   int
	cache [Dimensions]cached

	remainder float64
	product   uint64
}

// New creates a Sequence positioned at config.StartIndex. It panics if the
// start index is above MaxIndex.
func New(config Config) *Sequence {
	t := config.Table
	if t == nil {
		t = SharedTable()
	}
	budget := config.RenormalizationBudget
	if budget == 0 {
		budget = DefaultRenormalizationBudget
	}

	s := &Sequence{
		table:   t,
		mode:    config.Mode,
		updater: config.Mode.Updater(),
		strict:  config.StrictDimensions,
		budget:  budget,
	}
	// Index 0 maps to the all-zero accumulator in every dimension, which is
	// what the zeroed cache already holds.
	if err := s.SetIndex(config.StartIndex); err != nil {
		panic(err)
	}
	return s
}

// Dimensions returns the number of dimensions per point.
func (s *Sequence) Dimensions() int {
	return Dimensions
}

// Mode returns the update strategy the sequence was created with.
func (s *Sequence) Mode() Mode {
	return s.mode
}

// Index returns the current point index.
func (s *Sequence) Index() uint64 {
	return s.index
}

// Dimension returns the current dimension.
func (s *Sequence) Dimension() int {
	return s.dim
}

// Accumulator returns the raw fixed-point value of the current dimension at
// the current index. Accumulator()/2^63 is the sample value.
func (s *Sequence) Accumulator() uint64 {
	return s.cache[s.dim].value
}

// Value returns the unconsumed fraction of the current dimension without
// advancing. Right after a refresh it equals the sample value.
func (s *Sequence) Value() float64 {
	return s.remainder
}

// SetIndex moves to point i and dimension 0. Dimension 0 is recomputed from
// the table regardless of mode.
func (s *Sequence) SetIndex(i uint64) error {
	if i > MaxIndex {
		return fmt.Errorf("index %d above %d: %w", i, MaxIndex, ErrIndexOutOfRange)
	}
	s.index = i
	s.dim = 0
	s.cache[0] = cached{value: s.table.Sample(0, i), index: i}
	s.checkAccumulator()
	s.resetRemainder()
	return nil
}

// PrepareForIntegration positions the sequence at an index derived from the
// number of dimensions the caller intends to use, so that consumers drawing
// different numbers of dimensions walk different parts of the sequence.
func (s *Sequence) PrepareForIntegration(nDims int) error {
	if nDims < 1 || nDims > Dimensions {
		return fmt.Errorf("integration over %d dimensions: %w", nDims, ErrDimensionOutOfRange)
	}
	return s.SetIndex(BaseIndex + uint64(nDims)*IndexStride)
}

// NextIndex moves to the next point and back to dimension 0.
func (s *Sequence) NextIndex() {
	if s.index == MaxIndex {
		panic(fmt.Errorf("advancing past index %d: %w", MaxIndex, ErrIndexOutOfRange))
	}
	s.index++
	s.dim = 0
	s.refresh()
}

// SetDimension selects dimension d of the current point.
func (s *Sequence) SetDimension(d int) error {
	if d < 0 || d >= Dimensions {
		return fmt.Errorf("dimension %d not in [0, %d): %w", d, Dimensions, ErrDimensionOutOfRange)
	}
	s.dim = d
	s.refresh()
	return nil
}

// NextValue returns the current dimension's value in [0, 1) and moves to the
// next dimension. Moving past the last dimension panics with
// ErrDimensionBudget on a strict sequence and otherwise continues at
// dimension 0 of the next index.
func (s *Sequence) NextValue() float64 {
	v := s.remainder
	if s.dim+1 >= Dimensions && s.strict {
		panic(fmt.Errorf("point %d: %w", s.index, ErrDimensionBudget))
	}
	s.nextDimension()
	return v
}

// NextBetween returns a value in [min, max) interpolated by NextValue.
func (s *Sequence) NextBetween(min, max float64) float64 {
	t := s.NextValue()
	return min*(1-t) + max*t
}

// NextAt fills dst with successive dimensions of the current point, starting
// at dimension 0, and then moves to the next point.
func (s *Sequence) NextAt(dst []float64) error {
	if len(dst) > Dimensions {
		return fmt.Errorf("point of %d values: %w", len(dst), ErrDimensionOutOfRange)
	}
	if s.dim != 0 {
		s.dim = 0
		s.refresh()
	}
	for i := range dst {
		dst[i] = s.remainder
		if i+1 < len(dst) {
			s.dim++
			s.refresh()
		}
	}
	s.NextIndex()
	return nil
}

// nextDimension moves to the following dimension, wrapping to dimension 0 of
// the next index.
func (s *Sequence) nextDimension() {
	s.dim++
	if s.dim >= Dimensions {
		s.NextIndex()
		return
	}
	s.refresh()
}

// refresh brings the current dimension's cache up to the current index and
// resets the extraction state. It is a no-op on the accumulator when the
// cache is already current.
func (s *Sequence) refresh() {
	c := &s.cache[s.dim]
	if c.index != s.index {
		c.value = s.updater.Advance(s.table, s.dim, c.value, c.index, s.index)
		c.index = s.index
	}
	s.checkAccumulator()
	s.resetRemainder()
}

func (s *Sequence) checkAccumulator() {
	if v := s.cache[s.dim].value; v >= one {
		panic(fmt.Sprintf("sobol: accumulator %#x of dimension %d at index %d is not below 2^63",
			v, s.dim, s.index))
	}
}
