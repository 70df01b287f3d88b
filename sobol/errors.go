package sobol

import "errors"

var (
	// ErrDimensionOutOfRange is returned when a dimension lies outside
	// [0, Dimensions) or a point asks for more than Dimensions values.
	ErrDimensionOutOfRange = errors.New("sobol: dimension out of range")
	// ErrIndexOutOfRange is returned for indices above MaxIndex.
	ErrIndexOutOfRange = errors.New("sobol: index out of range")
	// ErrEmptyRange is returned by NextBounded when max <= min.
	ErrEmptyRange = errors.New("sobol: empty range")
	// ErrDimensionBudget is the panic value raised when a strict sequence is
	// asked for more than Dimensions values of one point.
	ErrDimensionBudget = errors.New("sobol: dimension budget exceeded")
	// ErrPolynomialsExhausted means too few polynomials exist up to MaxDegree.
	ErrPolynomialsExhausted = errors.New("sobol: not enough polynomials")
	// ErrBadDirectionNumbers flags an inconsistent initial direction number row.
	ErrBadDirectionNumbers = errors.New("sobol: bad initial direction numbers")
)
