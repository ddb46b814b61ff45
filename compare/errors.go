// SPDX-License-Identifier: MIT

// Package compare: sentinel error set and structured failure types.
// Sentinels are what callers match with errors.Is; the structured types
// carry the full diagnostic payload and are reachable with errors.As.
// The engine returns at most one failure per call, never panics on
// user-triggered conditions, and leaves panicking to the assertion layer.
package compare

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels, one per failure class. Every message is prefixed with
// "compare: ..." for easy grepping across test logs.
var (
	// ErrDimensionMismatch is returned when the two matrices disagree on
	// (rows, cols). Checked before any element access.
	ErrDimensionMismatch = errors.New("compare: dimension mismatch")

	// ErrElementsMismatch is returned when the shapes agree but one or
	// more element pairs fail the comparator.
	ErrElementsMismatch = errors.New("compare: mismatched elements")

	// ErrSparseEntryOutOfBounds is returned when a sparse operand stores a
	// triplet outside its declared [0,rows) x [0,cols) shape.
	ErrSparseEntryOutOfBounds = errors.New("compare: sparse entry out of bounds")

	// ErrDuplicateSparseEntry is returned when a sparse operand stores the
	// same coordinate more than once.
	ErrDuplicateSparseEntry = errors.New("compare: duplicate sparse entry")

	// ErrScalarMismatch is returned by Scalars when the two values fail
	// the comparator.
	ErrScalarMismatch = errors.New("compare: scalar mismatch")
)

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows, Cols int
}

// String renders the shape the way reports print it, e.g. "2 x 3".
func (s Shape) String() string {
	return fmt.Sprintf("%d x %d", s.Rows, s.Cols)
}

// Coordinate is a (row, col) pair identifying one matrix cell.
type Coordinate struct {
	Row, Col int
}

// Side tags which operand of a comparison an Entry belongs to.
type Side uint8

const (
	// SideLeft is the first operand passed to Matrices.
	SideLeft Side = iota
	// SideRight is the second operand passed to Matrices.
	SideRight
)

// String returns "Left" or "Right".
func (s Side) String() string {
	if s == SideLeft {
		return "Left"
	}

	return "Right"
}

// Reverse returns the opposite side.
func (s Side) Reverse() Side {
	if s == SideLeft {
		return SideRight
	}

	return SideLeft
}

// Entry is a side-tagged coordinate used by the sparse validation failures.
type Entry struct {
	Side       Side
	Coordinate Coordinate
}

// String renders the entry the way reports print it, e.g. "Left(5, 0)".
func (e Entry) String() string {
	return fmt.Sprintf("%s(%d, %d)", e.Side, e.Coordinate.Row, e.Coordinate.Col)
}

// Reverse returns the entry tagged to the opposite side.
func (e Entry) Reverse() Entry {
	return Entry{Side: e.Side.Reverse(), Coordinate: e.Coordinate}
}

// Failure is implemented by every error the engine returns. Reverse yields
// an equivalent failure with the roles of the left and right operand
// interchanged; it exists so tests can assert the engine's symmetry and is
// not needed in production use.
type Failure interface {
	error

	// Reverse swaps the left/right roles in every part of the payload.
	Reverse() Failure
}

// ElementMismatch records one coordinate where the comparator reported
// inequality. Err is the comparator's error for this pair.
type ElementMismatch[T Scalar] struct {
	Left, Right T
	Err         error
	Row, Col    int
}

// String renders one report line, e.g. "(0, 2): x = 3, y = 9. Absolute error: 6.".
func (m ElementMismatch[T]) String() string {
	s := fmt.Sprintf("(%d, %d): x = %v, y = %v.", m.Row, m.Col, m.Left, m.Right)
	if reason := failureReason(m.Err); reason != "" {
		s += " " + reason
	}

	return s
}

// reverse swaps left and right. The comparator error is kept as-is: all
// stock comparator errors are symmetric in their payload.
func (m ElementMismatch[T]) reverse() ElementMismatch[T] {
	return ElementMismatch[T]{Left: m.Right, Right: m.Left, Err: m.Err, Row: m.Row, Col: m.Col}
}

// failureReason extracts the reason suffix for a mismatch line.
// Reasoner implementations control their own text (possibly empty);
// other errors contribute their Error string.
func failureReason(err error) string {
	if err == nil {
		return ""
	}
	if r, ok := err.(Reasoner); ok {
		return r.FailureReason()
	}

	return err.Error()
}

// DimensionMismatchError reports that the operand shapes differ.
type DimensionMismatchError struct {
	Left, Right Shape
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf(
		"Dimensions of matrices X (left) and Y (right) do not match.\n dim(X) = %s\n dim(Y) = %s",
		e.Left, e.Right)
}

// Is matches ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// Reverse swaps the two shapes.
func (e *DimensionMismatchError) Reverse() Failure {
	return &DimensionMismatchError{Left: e.Right, Right: e.Left}
}

// ElementsMismatchError reports every coordinate at which the comparator
// failed, in deterministic (row, col) ascending order.
type ElementsMismatchError[T Scalar] struct {
	ComparatorDescription string
	Mismatches            []ElementMismatch[T]
}

// Report renders the failure, listing at most maxReports mismatches and
// summarizing the rest. A negative maxReports lists everything.
func (e *ElementsMismatchError[T]) Report(maxReports int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrices X (left) and Y (right) have %d mismatched element pairs.\n", len(e.Mismatches))
	b.WriteString("The mismatched elements are listed below, in the format\n")
	b.WriteString("(row, col): x = X[[row, col]], y = Y[[row, col]].\n\n")

	shown := e.Mismatches
	if maxReports >= 0 && len(shown) > maxReports {
		shown = shown[:maxReports]
	}
	for _, m := range shown {
		b.WriteString(" ")
		b.WriteString(m.String())
		b.WriteString("\n")
	}
	if hidden := len(e.Mismatches) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, " ... (%d mismatching elements not shown)\n", hidden)
	}
	fmt.Fprintf(&b, "\nComparison criterion: %s", e.ComparatorDescription)

	return b.String()
}

func (e *ElementsMismatchError[T]) Error() string {
	return e.Report(-1)
}

// Is matches ErrElementsMismatch.
func (e *ElementsMismatchError[T]) Is(target error) bool {
	return target == ErrElementsMismatch
}

// Reverse swaps left and right in every recorded mismatch. Ordering is
// unaffected (mismatches are keyed by coordinate, not by value).
func (e *ElementsMismatchError[T]) Reverse() Failure {
	reversed := make([]ElementMismatch[T], len(e.Mismatches))
	for i, m := range e.Mismatches {
		reversed[i] = m.reverse()
	}

	return &ElementsMismatchError[T]{
		ComparatorDescription: e.ComparatorDescription,
		Mismatches:            reversed,
	}
}

// SparseOutOfBoundsError reports the first out-of-bounds triplet found in
// one of the sparse operands, in that operand's own triplet order.
type SparseOutOfBoundsError struct {
	Entry Entry
}

func (e *SparseOutOfBoundsError) Error() string {
	return fmt.Sprintf("At least one sparse entry is out of bounds. Example: %s.", e.Entry)
}

// Is matches ErrSparseEntryOutOfBounds.
func (e *SparseOutOfBoundsError) Is(target error) bool {
	return target == ErrSparseEntryOutOfBounds
}

// Reverse flips the side tag.
func (e *SparseOutOfBoundsError) Reverse() Failure {
	return &SparseOutOfBoundsError{Entry: e.Entry.Reverse()}
}

// DuplicateEntryError reports the first duplicated coordinate found in one
// of the sparse operands, in that operand's own triplet order.
type DuplicateEntryError struct {
	Entry Entry
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("At least one duplicate sparse entry detected. Example: %s.", e.Entry)
}

// Is matches ErrDuplicateSparseEntry.
func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicateSparseEntry
}

// Reverse flips the side tag.
func (e *DuplicateEntryError) Reverse() Failure {
	return &DuplicateEntryError{Entry: e.Entry.Reverse()}
}

// ScalarMismatchError is the failure returned by Scalars.
type ScalarMismatchError[T Scalar] struct {
	Left, Right           T
	Err                   error
	ComparatorDescription string
}

func (e *ScalarMismatchError[T]) Error() string {
	line := fmt.Sprintf("x = %v, y = %v.", e.Left, e.Right)
	if reason := failureReason(e.Err); reason != "" {
		line += " " + reason
	}

	return fmt.Sprintf(
		"Scalars x and y do not compare equal.\n\n%s\n\nComparison criterion: %s",
		line, e.ComparatorDescription)
}

// Is matches ErrScalarMismatch.
func (e *ScalarMismatchError[T]) Is(target error) bool {
	return target == ErrScalarMismatch
}

// Reverse swaps the two values.
func (e *ScalarMismatchError[T]) Reverse() Failure {
	return &ScalarMismatchError[T]{
		Left:                  e.Right,
		Right:                 e.Left,
		Err:                   e.Err,
		ComparatorDescription: e.ComparatorDescription,
	}
}

// Compile-time interface checks.
var (
	_ Failure = (*DimensionMismatchError)(nil)
	_ Failure = (*ElementsMismatchError[float64])(nil)
	_ Failure = (*SparseOutOfBoundsError)(nil)
	_ Failure = (*DuplicateEntryError)(nil)
	_ Failure = (*ScalarMismatchError[float64])(nil)
)
