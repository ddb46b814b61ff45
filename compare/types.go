// SPDX-License-Identifier: MIT

// Package compare: capability interfaces and domain types consumed by the
// comparison engine. This file intentionally contains ONLY the contracts a
// matrix type must satisfy and the small value types shared across the
// package; errors live in errors.go, the engine in engine.go.
package compare

import "golang.org/x/exp/constraints"

// Scalar is the set of element types the engine operates on.
// The sparse strategies rely on the zero value of T being the additive
// zero, which holds for every member of this constraint.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Triplet describes one explicitly stored entry of a sparse matrix.
type Triplet[T any] struct {
	Row, Col int
	Value    T
}

// Matrix is the main capability interface: shape plus an access view.
// Implement it with pointer receivers and both owned values and borrowed
// pointers pass through the API uniformly.
type Matrix[T any] interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// Access exposes the dense or sparse view of the matrix.
	// The returned value must be built with Dense or Sparse.
	Access() Access[T]
}

// DenseAccess is the capability of a matrix with O(1) random access.
// At must be defined for all 0 <= row < Rows(), 0 <= col < Cols();
// the engine only queries within the declared shape.
type DenseAccess[T any] interface {
	Matrix[T]

	// At returns the element at (row, col). Complexity: O(1).
	At(row, col int) T
}

// SparseAccess is the capability of a matrix stored as coordinate triplets.
// Triplets are nominally unique and in-bounds, but the engine validates
// both properties rather than assume them. Absent coordinates are the zero
// value of T.
type SparseAccess[T any] interface {
	Matrix[T]

	// NNZ returns the number of explicitly stored entries. Complexity: O(1).
	NNZ() int

	// Triplets returns the stored entries, in no particular order.
	// Complexity: O(nnz).
	Triplets() []Triplet[T]
}

// Access is a closed tagged view over the two access modes. Exactly one of
// the handles is set; construct values with Dense or Sparse only. Keeping
// the tag closed makes the engine's dispatch exhaustive.
type Access[T any] struct {
	dense  DenseAccess[T]
	sparse SparseAccess[T]
}

// Dense wraps a dense view for return from Matrix.Access.
func Dense[T any](d DenseAccess[T]) Access[T] {
	return Access[T]{dense: d}
}

// Sparse wraps a sparse view for return from Matrix.Access.
func Sparse[T any](s SparseAccess[T]) Access[T] {
	return Access[T]{sparse: s}
}

// Comparator is a pluggable elementwise equality criterion.
// Implementations must be deterministic; all stock comparators are also
// symmetric (Compare(a,b) and Compare(b,a) report equivalent outcomes).
type Comparator[T any] interface {
	// Compare reports nil when a and b are considered equal, and a
	// descriptive error otherwise.
	Compare(a, b T) error

	// Description is a human-readable statement of the criterion, quoted
	// verbatim in failure reports.
	Description() string
}

// Reasoner is optionally implemented by comparator errors to control the
// reason text appended to a mismatch line in reports. An empty reason
// suppresses the suffix entirely (the exact comparator does this).
// Errors without the method fall back to Error().
type Reasoner interface {
	FailureReason() string
}
