// SPDX-License-Identifier: MIT

// Package compare: canonical validation of sparse triplet sequences.
// The engine never trusts a SparseAccess: declared bounds and coordinate
// uniqueness are re-checked here before any element is compared.
package compare

// violationKind distinguishes the two structural defects a triplet
// sequence can exhibit.
type violationKind uint8

const (
	violationOutOfBounds violationKind = iota
	violationDuplicate
)

// tripletViolation is the first structural problem found while building a
// coordinate map. The side tag is assigned by the caller, which knows
// which operand the triplets came from.
type tripletViolation struct {
	kind  violationKind
	coord Coordinate
}

// sideTagged converts the violation into the matching public failure.
func (v *tripletViolation) sideTagged(side Side) Failure {
	entry := Entry{Side: side, Coordinate: v.coord}
	if v.kind == violationDuplicate {
		return &DuplicateEntryError{Entry: entry}
	}

	return &SparseOutOfBoundsError{Entry: entry}
}

// buildTripletMap turns a triplet sequence plus declared bounds into a
// coordinate->value map suitable for O(1) lookup.
//
// Triplets are visited in source order; for each one the bounds check runs
// before the duplicate check, so a coordinate that is both out of bounds
// and duplicated reports as out of bounds. The first violation found wins
// and aborts the build. Bounds are half-open: row == rows is out of bounds.
// Complexity: O(nnz) time and memory.
func buildTripletMap[T Scalar](rows, cols int, triplets []Triplet[T]) (map[Coordinate]T, *tripletViolation) {
	lookup := make(map[Coordinate]T, len(triplets))

	for _, t := range triplets {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, &tripletViolation{kind: violationOutOfBounds, coord: Coordinate{Row: t.Row, Col: t.Col}}
		}
		coord := Coordinate{Row: t.Row, Col: t.Col}
		if _, present := lookup[coord]; present {
			return nil, &tripletViolation{kind: violationDuplicate, coord: coord}
		}
		lookup[coord] = t.Value
	}

	return lookup, nil
}
