// Package mock supplies simple concrete matrix types implementing the
// compare capability interfaces. They exist for testing comparison logic —
// both this module's own and downstream libraries' — and intentionally do
// no validation beyond construction: the engine is expected to catch
// structural defects in sparse data, so Sparse happily stores duplicate or
// out-of-bounds triplets when told to.
package mock

import (
	"fmt"

	"github.com/katalvlaran/matcompare/compare"
)

// Dense is a row-major dense test matrix.
type Dense[T compare.Scalar] struct {
	rows, cols int
	data       []T
}

// NewDense builds a rows x cols matrix over data, which must hold exactly
// rows*cols elements in row-major order. Panics otherwise (test fixture
// construction is programmer-controlled).
func NewDense[T compare.Scalar](rows, cols int, data []T) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic("mock: negative matrix dimensions")
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("mock: data holds %d elements, want rows*cols = %d", len(data), rows*cols))
	}

	return &Dense[T]{rows: rows, cols: cols, data: data}
}

// FromRows builds a Dense from a row-slice literal, the closest Go gets to
// a matrix literal:
//
//	m := mock.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
//
// All rows must have equal length; panics on ragged input.
func FromRows[T compare.Scalar](rows [][]T) *Dense[T] {
	if len(rows) == 0 {
		return &Dense[T]{}
	}

	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("mock: row %d has %d elements, want %d", i, len(row), cols))
		}
		data = append(data, row...)
	}

	return &Dense[T]{rows: len(rows), cols: cols, data: data}
}

// Rows implements compare.Matrix.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols implements compare.Matrix.
func (m *Dense[T]) Cols() int { return m.cols }

// Access implements compare.Matrix.
func (m *Dense[T]) Access() compare.Access[T] { return compare.Dense[T](m) }

// At implements compare.DenseAccess. Complexity: O(1).
func (m *Dense[T]) At(row, col int) T {
	return m.data[row*m.cols+col]
}

// Sparse is a coordinate-triplet test matrix with a declared shape.
// The triplets are stored verbatim; see the package comment.
type Sparse[T compare.Scalar] struct {
	rows, cols int
	triplets   []compare.Triplet[T]
}

// NewSparse builds a rows x cols sparse matrix over the given triplets.
func NewSparse[T compare.Scalar](rows, cols int, triplets []compare.Triplet[T]) *Sparse[T] {
	if rows < 0 || cols < 0 {
		panic("mock: negative matrix dimensions")
	}

	return &Sparse[T]{rows: rows, cols: cols, triplets: triplets}
}

// Rows implements compare.Matrix.
func (m *Sparse[T]) Rows() int { return m.rows }

// Cols implements compare.Matrix.
func (m *Sparse[T]) Cols() int { return m.cols }

// Access implements compare.Matrix.
func (m *Sparse[T]) Access() compare.Access[T] { return compare.Sparse[T](m) }

// NNZ implements compare.SparseAccess.
func (m *Sparse[T]) NNZ() int { return len(m.triplets) }

// Triplets implements compare.SparseAccess. Returns a copy so callers
// cannot disturb the fixture.
func (m *Sparse[T]) Triplets() []compare.Triplet[T] {
	out := make([]compare.Triplet[T], len(m.triplets))
	copy(out, m.triplets)

	return out
}

// ToDense materializes the sparse matrix as a Dense of the same shape,
// with absent coordinates zero-filled. Out-of-bounds triplets yield an
// error; duplicate coordinates resolve last-write-wins (ToDense is a test
// helper, duplicate detection belongs to the engine).
// Complexity: O(rows*cols + nnz).
func (m *Sparse[T]) ToDense() (*Dense[T], error) {
	data := make([]T, m.rows*m.cols)
	for _, t := range m.triplets {
		if t.Row < 0 || t.Row >= m.rows || t.Col < 0 || t.Col >= m.cols {
			return nil, fmt.Errorf("mock: triplet (%d, %d) outside %d x %d matrix", t.Row, t.Col, m.rows, m.cols)
		}
		data[t.Row*m.cols+t.Col] = t.Value
	}

	return &Dense[T]{rows: m.rows, cols: m.cols, data: data}, nil
}

// Compile-time capability checks.
var (
	_ compare.DenseAccess[int64]    = (*Dense[int64])(nil)
	_ compare.SparseAccess[float64] = (*Sparse[float64])(nil)
)
