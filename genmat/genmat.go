// Package genmat provides gopter generators for random mock matrices,
// used by the property-based tests in this module and available to
// downstream test suites.
//
// Generated sparse matrices are structurally valid: coordinates are drawn
// in bounds and de-duplicated through a position set, so properties over
// well-formed inputs never trip the engine's structural validation. Tests
// that need malformed sparse data construct it by hand instead.
package genmat

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/katalvlaran/matcompare/compare"
	"github.com/katalvlaran/matcompare/mock"
)

// DenseI64 generates *mock.Dense[int64] with rows in [0, maxRows] and
// cols in [0, maxCols].
func DenseI64(maxRows, maxCols int) gopter.Gen {
	return denseGen[int64](maxRows, maxCols, gen.Int64())
}

// DenseF64 generates *mock.Dense[float64] with finite, non-NaN elements.
func DenseF64(maxRows, maxCols int) gopter.Gen {
	return denseGen[float64](maxRows, maxCols, gen.Float64Range(-1e6, 1e6))
}

// SparseI64 generates structurally valid *mock.Sparse[int64].
func SparseI64(maxRows, maxCols int) gopter.Gen {
	return sparseGen[int64](maxRows, maxCols, gen.Int64())
}

// SparseF64 generates structurally valid *mock.Sparse[float64] with
// finite, non-NaN values.
func SparseF64(maxRows, maxCols int) gopter.Gen {
	return sparseGen[float64](maxRows, maxCols, gen.Float64Range(-1e6, 1e6))
}

// shapeGen draws (rows, cols) uniformly, including empty shapes.
func shapeGen(maxRows, maxCols int) gopter.Gen {
	return gopter.CombineGens(gen.IntRange(0, maxRows), gen.IntRange(0, maxCols))
}

func denseGen[T compare.Scalar](maxRows, maxCols int, values gopter.Gen) gopter.Gen {
	resultType := reflect.TypeOf(&mock.Dense[T]{})

	return shapeGen(maxRows, maxCols).FlatMap(func(v interface{}) gopter.Gen {
		dims := v.([]interface{})
		rows, cols := dims[0].(int), dims[1].(int)

		return gen.SliceOfN(rows*cols, values).Map(func(data []T) *mock.Dense[T] {
			return mock.NewDense(rows, cols, data)
		})
	}, resultType)
}

func sparseGen[T compare.Scalar](maxRows, maxCols int, values gopter.Gen) gopter.Gen {
	resultType := reflect.TypeOf(&mock.Sparse[T]{})

	return shapeGen(maxRows, maxCols).FlatMap(func(v interface{}) gopter.Gen {
		dims := v.([]interface{})
		rows, cols := dims[0].(int), dims[1].(int)
		if rows*cols == 0 {
			return gen.Const(mock.NewSparse[T](rows, cols, nil))
		}

		// Draw flat positions, de-duplicate, then pair with values. The
		// position set guarantees in-bounds, unique coordinates.
		return gen.SliceOf(gen.IntRange(0, rows*cols-1)).FlatMap(func(pv interface{}) gopter.Gen {
			positions := uniqueInts(pv.([]int))

			return gen.SliceOfN(len(positions), values).Map(func(vals []T) *mock.Sparse[T] {
				triplets := make([]compare.Triplet[T], len(positions))
				for i, p := range positions {
					triplets[i] = compare.Triplet[T]{Row: p / cols, Col: p % cols, Value: vals[i]}
				}

				return mock.NewSparse(rows, cols, triplets)
			})
		}, resultType)
	}, resultType)
}

// uniqueInts keeps the first occurrence of each value, preserving order.
func uniqueInts(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
