// SPDX-License-Identifier: MIT

// Package compare: the comparison engine.
//
// Matrices is the single public entry point. Its behavior is fully
// determined by (a) whether the shapes match and (b) the access-mode pair
// of the two operands:
//
//	dense  x dense  — row-major scan, O(rows*cols)
//	dense  x sparse — validated coordinate map, zero default, O(rows*cols)
//	sparse x dense  — the above with operands swapped and sides flipped
//	sparse x sparse — key-set union of two validated maps, O(nnz_l + nnz_r),
//	                  plus an O(k log k) sort purely for deterministic output
//
// Sparse-vs-sparse deliberately never materializes the dense grid: it
// works from the nonzero sets alone, which is the whole point of a sparse
// representation.
package compare

import "sort"

// Matrices compares two matrices elementwise under the given comparator.
//
// It returns nil on a full match, or exactly one of the failure types in
// errors.go: dimensions are checked first (the sole fast-fail path), then
// sparse operands are validated (left before right), then every element
// pair within the common shape is compared — the scan is exhaustive, never
// cut short at the first mismatch, so the failure lists every offending
// coordinate in (row, col) ascending order.
//
// Pure function: no retries, no I/O, no shared state; safe for concurrent
// callers.
func Matrices[T Scalar](left, right Matrix[T], comp Comparator[T]) error {
	if left.Rows() != right.Rows() || left.Cols() != right.Cols() {
		return &DimensionMismatchError{
			Left:  Shape{Rows: left.Rows(), Cols: left.Cols()},
			Right: Shape{Rows: right.Rows(), Cols: right.Cols()},
		}
	}

	la, ra := left.Access(), right.Access()
	switch {
	case la.dense != nil && ra.dense != nil:
		return compareDenseDense(la.dense, ra.dense, comp)
	case la.dense != nil && ra.sparse != nil:
		return compareDenseSparse(la.dense, ra.sparse, comp, false)
	case la.sparse != nil && ra.dense != nil:
		// Mirror of dense x sparse: swap operands, flip the side tag.
		return compareDenseSparse(ra.dense, la.sparse, comp, true)
	case la.sparse != nil && ra.sparse != nil:
		return compareSparseSparse(la.sparse, ra.sparse, comp)
	default:
		// Access has a closed constructor set; an empty value is a
		// programmer error in the Matrix implementation, not user input.
		panic("compare: Access value was not built with compare.Dense or compare.Sparse")
	}
}

// compareDenseDense scans both operands in row-major order.
// Shape agreement is guaranteed by Matrices.
func compareDenseDense[T Scalar](left, right DenseAccess[T], comp Comparator[T]) error {
	var mismatches []ElementMismatch[T]
	for i := 0; i < left.Rows(); i++ {
		for j := 0; j < left.Cols(); j++ {
			a, b := left.At(i, j), right.At(i, j)
			if err := comp.Compare(a, b); err != nil {
				mismatches = append(mismatches, ElementMismatch[T]{Left: a, Right: b, Err: err, Row: i, Col: j})
			}
		}
	}

	return elementsResult(comp, mismatches)
}

// compareDenseSparse validates the sparse operand, then scans the dense
// shape in row-major order with a zero default for absent coordinates.
// swapped is true when the sparse operand is the caller's LEFT side; it
// flips both the per-element value order and the side tag on validation
// failures. Shape agreement is guaranteed by Matrices.
func compareDenseSparse[T Scalar](dense DenseAccess[T], sparse SparseAccess[T], comp Comparator[T], swapped bool) error {
	sparseSide := SideRight
	if swapped {
		sparseSide = SideLeft
	}

	lookup, violation := buildTripletMap(sparse.Rows(), sparse.Cols(), sparse.Triplets())
	if violation != nil {
		return violation.sideTagged(sparseSide)
	}

	var (
		zero       T
		mismatches []ElementMismatch[T]
	)
	for i := 0; i < dense.Rows(); i++ {
		for j := 0; j < dense.Cols(); j++ {
			a := dense.At(i, j)
			b, present := lookup[Coordinate{Row: i, Col: j}]
			if !present {
				b = zero
			}
			if swapped {
				a, b = b, a
			}
			if err := comp.Compare(a, b); err != nil {
				mismatches = append(mismatches, ElementMismatch[T]{Left: a, Right: b, Err: err, Row: i, Col: j})
			}
		}
	}

	return elementsResult(comp, mismatches)
}

// compareSparseSparse validates both operands (left first), then compares
// each coordinate present in either map exactly once, defaulting the
// absent side to zero. Map iteration order is unspecified, so the
// collected mismatches are sorted by (row, col) before being returned —
// the only superlinear step, and it exists solely for reproducible output.
func compareSparseSparse[T Scalar](left, right SparseAccess[T], comp Comparator[T]) error {
	leftMap, violation := buildTripletMap(left.Rows(), left.Cols(), left.Triplets())
	if violation != nil {
		return violation.sideTagged(SideLeft)
	}
	rightMap, violation := buildTripletMap(right.Rows(), right.Cols(), right.Triplets())
	if violation != nil {
		return violation.sideTagged(SideRight)
	}

	var (
		zero       T
		mismatches []ElementMismatch[T]
	)
	compareAt := func(coord Coordinate) {
		a, inLeft := leftMap[coord]
		if !inLeft {
			a = zero
		}
		b, inRight := rightMap[coord]
		if !inRight {
			b = zero
		}
		if err := comp.Compare(a, b); err != nil {
			mismatches = append(mismatches, ElementMismatch[T]{Left: a, Right: b, Err: err, Row: coord.Row, Col: coord.Col})
		}
	}

	for coord := range leftMap {
		compareAt(coord)
	}
	for coord := range rightMap {
		if _, alsoLeft := leftMap[coord]; !alsoLeft {
			compareAt(coord)
		}
	}

	sort.Slice(mismatches, func(i, j int) bool {
		if mismatches[i].Row != mismatches[j].Row {
			return mismatches[i].Row < mismatches[j].Row
		}

		return mismatches[i].Col < mismatches[j].Col
	})

	return elementsResult(comp, mismatches)
}

// elementsResult folds a mismatch list into the engine's return value.
func elementsResult[T Scalar](comp Comparator[T], mismatches []ElementMismatch[T]) error {
	if len(mismatches) == 0 {
		return nil
	}

	return &ElementsMismatchError[T]{
		ComparatorDescription: comp.Description(),
		Mismatches:            mismatches,
	}
}
