// SPDX-License-Identifier: MIT
// Package compare_test: property-based coverage of the engine over
// randomly generated (structurally valid) matrices.
package compare_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/matcompare/compare"
	"github.com/katalvlaran/matcompare/comparators"
	"github.com/katalvlaran/matcompare/genmat"
	"github.com/katalvlaran/matcompare/mock"
)

func TestEngineProperties(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	exact := comparators.Exact[int64]{}

	properties.Property("mismatched shapes always yield a dimension mismatch", prop.ForAll(
		func(m, n, p, q int) bool {
			if m == p && n == q {
				return true // not the property under test
			}
			x := mock.NewDense(m, n, make([]int64, m*n))
			y := mock.NewDense(p, q, make([]int64, p*q))
			err := compare.Matrices[int64](x, y, exact)
			var dim *compare.DimensionMismatchError
			if !errors.As(err, &dim) {
				return false
			}

			return dim.Left == (compare.Shape{Rows: m, Cols: n}) &&
				dim.Right == (compare.Shape{Rows: p, Cols: q})
		},
		gen.IntRange(0, 8), gen.IntRange(0, 8), gen.IntRange(0, 8), gen.IntRange(0, 8),
	))

	properties.Property("dense matrix compares equal to itself", prop.ForAll(
		func(x *mock.Dense[int64]) bool {
			return compare.Matrices[int64](x, x, exact) == nil
		},
		genmat.DenseI64(6, 6),
	))

	properties.Property("sparse matrix compares equal to itself", prop.ForAll(
		func(x *mock.Sparse[int64]) bool {
			return compare.Matrices[int64](x, x, exact) == nil
		},
		genmat.SparseI64(6, 6),
	))

	properties.Property("sparse operand is interchangeable with its dense form", prop.ForAll(
		func(x *mock.Dense[int64], s *mock.Sparse[int64]) bool {
			d, err := s.ToDense()
			if err != nil {
				return false // generator emits in-bounds triplets only
			}
			// Same verdict whether s appears on the right or on the left.
			return reflect.DeepEqual(
				compare.Matrices[int64](x, s, exact),
				compare.Matrices[int64](x, d, exact),
			) && reflect.DeepEqual(
				compare.Matrices[int64](s, x, exact),
				compare.Matrices[int64](d, x, exact),
			)
		},
		genmat.DenseI64(5, 5), genmat.SparseI64(5, 5),
	))

	properties.Property("swapping operands reverses the failure (dense)", prop.ForAll(
		func(x, y *mock.Dense[int64]) bool {
			return symmetricUnderReverse(
				compare.Matrices[int64](x, y, exact),
				compare.Matrices[int64](y, x, exact),
			)
		},
		genmat.DenseI64(5, 5), genmat.DenseI64(5, 5),
	))

	properties.Property("swapping operands reverses the failure (sparse)", prop.ForAll(
		func(x, y *mock.Sparse[int64]) bool {
			return symmetricUnderReverse(
				compare.Matrices[int64](x, y, exact),
				compare.Matrices[int64](y, x, exact),
			)
		},
		genmat.SparseI64(5, 5), genmat.SparseI64(5, 5),
	))

	properties.Property("swapping operands reverses the failure (mixed)", prop.ForAll(
		func(x *mock.Dense[int64], y *mock.Sparse[int64]) bool {
			return symmetricUnderReverse(
				compare.Matrices[int64](x, y, exact),
				compare.Matrices[int64](y, x, exact),
			)
		},
		genmat.DenseI64(5, 5), genmat.SparseI64(5, 5),
	))

	properties.TestingRun(t)
}

// symmetricUnderReverse checks that ba equals Reverse(ab).
func symmetricUnderReverse(ab, ba error) bool {
	if ab == nil || ba == nil {
		return ab == nil && ba == nil
	}
	failure, ok := ab.(compare.Failure)
	if !ok {
		return false
	}

	return reflect.DeepEqual(ba, failure.Reverse())
}
