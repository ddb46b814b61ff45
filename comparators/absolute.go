package comparators

import (
	"fmt"

	"github.com/katalvlaran/matcompare/compare"
)

// Absolute compares elements by their absolute difference, inclusively:
// the pair matches when |x - y| <= Tol. The difference is always computed
// by subtracting the smaller value from the larger one, so the comparator
// works for unsigned integer types where signed subtraction would wrap.
//
// Tol must be non-negative; use NewAbsolute to get that checked.
type Absolute[T compare.Scalar] struct {
	// Tol is the maximum tolerated absolute difference (inclusive).
	Tol T
}

// NewAbsolute returns an Absolute comparator with the given tolerance.
// Panics when tol is negative: a negative tolerance can never match
// anything and is a programmer error, not a comparison outcome.
func NewAbsolute[T compare.Scalar](tol T) Absolute[T] {
	var zero T
	if tol < zero {
		panic("comparators: absolute tolerance must be non-negative")
	}

	return Absolute[T]{Tol: tol}
}

// Compare implements compare.Comparator.
func (c Absolute[T]) Compare(a, b T) error {
	// Equal values match regardless of tolerance; this also sidesteps the
	// subtraction for the common case.
	if a == b {
		return nil
	}

	var distance T
	if a > b {
		distance = a - b
	} else {
		distance = b - a
	}
	if distance <= c.Tol {
		return nil
	}

	return AbsoluteError[T]{Distance: distance}
}

// Description implements compare.Comparator.
func (c Absolute[T]) Description() string {
	return fmt.Sprintf("absolute difference, |x - y| <= %v.", c.Tol)
}

// AbsoluteError carries the absolute distance between a mismatched pair.
// The distance is symmetric, so a reversed comparison produces an equal
// error value.
type AbsoluteError[T compare.Scalar] struct {
	Distance T
}

func (e AbsoluteError[T]) Error() string {
	return e.FailureReason()
}

// FailureReason implements compare.Reasoner.
func (e AbsoluteError[T]) FailureReason() string {
	return fmt.Sprintf("Absolute error: %v.", e.Distance)
}
