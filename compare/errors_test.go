// SPDX-License-Identifier: MIT
// Package compare_test: golden-output tests for the failure rendering.
// The report text is part of the contract — test authors read it — so it
// is pinned verbatim here.
package compare_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/matcompare/compare"
	"github.com/katalvlaran/matcompare/comparators"
	"github.com/katalvlaran/matcompare/mock"
	"github.com/stretchr/testify/require"
)

func TestMismatchedElementsOutput(t *testing.T) {
	t.Parallel()

	left := mock.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	right := mock.FromRows([][]int64{{1, 2, 9}, {5, 4, 6}})

	err := compare.Matrices[int64](left, right, comparators.Exact[int64]{})
	require.Error(t, err)
	require.Equal(t,
		`Matrices X (left) and Y (right) have 3 mismatched element pairs.
The mismatched elements are listed below, in the format
(row, col): x = X[[row, col]], y = Y[[row, col]].

 (0, 2): x = 3, y = 9.
 (1, 0): x = 4, y = 5.
 (1, 1): x = 5, y = 4.

Comparison criterion: exact equality x == y.`,
		err.Error())
}

func TestMismatchedElementsOutputAbsoluteF64(t *testing.T) {
	t.Parallel()

	left := mock.FromRows([][]float64{{1.0, 2.0, 3.0}, {4.0, 5.0, 6.0}})
	right := mock.FromRows([][]float64{{1.0, 2.0, 9.0}, {5.0, 4.0, 6.0}})

	err := compare.Matrices[float64](left, right, comparators.NewAbsolute(1e-12))
	require.Error(t, err)
	require.Equal(t,
		`Matrices X (left) and Y (right) have 3 mismatched element pairs.
The mismatched elements are listed below, in the format
(row, col): x = X[[row, col]], y = Y[[row, col]].

 (0, 2): x = 3, y = 9. Absolute error: 6.
 (1, 0): x = 4, y = 5. Absolute error: 1.
 (1, 1): x = 5, y = 4. Absolute error: 1.

Comparison criterion: absolute difference, |x - y| <= 1e-12.`,
		err.Error())
}

func TestMismatchedDimensionsOutput(t *testing.T) {
	t.Parallel()

	left := mock.FromRows([][]int64{{1, 2}, {4, 5}})
	right := mock.FromRows([][]int64{{1, 2, 9}, {5, 4, 6}})

	err := compare.Matrices[int64](left, right, comparators.Exact[int64]{})
	require.Error(t, err)
	require.Equal(t,
		`Dimensions of matrices X (left) and Y (right) do not match.
 dim(X) = 2 x 2
 dim(Y) = 2 x 3`,
		err.Error())
}

func TestSparseValidationOutput(t *testing.T) {
	t.Parallel()

	exact := comparators.Exact[int64]{}
	empty := mock.NewSparse[int64](3, 3, nil)

	t.Run("duplicate left", func(t *testing.T) {
		a := mock.NewSparse(3, 3, []compare.Triplet[int64]{tr(1, 0, 2), tr(1, 0, 2)})
		err := compare.Matrices[int64](a, empty, exact)
		require.EqualError(t, err, "At least one duplicate sparse entry detected. Example: Left(1, 0).")
	})

	t.Run("duplicate right", func(t *testing.T) {
		b := mock.NewSparse(3, 3, []compare.Triplet[int64]{tr(1, 0, 2), tr(1, 0, 2)})
		err := compare.Matrices[int64](empty, b, exact)
		require.EqualError(t, err, "At least one duplicate sparse entry detected. Example: Right(1, 0).")
	})

	t.Run("out of bounds left", func(t *testing.T) {
		a := mock.NewSparse(3, 3, []compare.Triplet[int64]{tr(5, 0, 2), tr(1, 0, 2)})
		err := compare.Matrices[int64](a, empty, exact)
		require.EqualError(t, err, "At least one sparse entry is out of bounds. Example: Left(5, 0).")
	})

	t.Run("out of bounds right", func(t *testing.T) {
		b := mock.NewSparse(3, 3, []compare.Triplet[int64]{tr(5, 0, 2), tr(1, 0, 2)})
		err := compare.Matrices[int64](empty, b, exact)
		require.EqualError(t, err, "At least one sparse entry is out of bounds. Example: Right(5, 0).")
	})
}

func TestElementsMismatchReportCap(t *testing.T) {
	t.Parallel()

	// 4x4 all-mismatching pair: 16 mismatches, cap at 12 hides 4.
	rows := make([][]int64, 4)
	zeros := make([][]int64, 4)
	for i := range rows {
		rows[i] = []int64{1, 1, 1, 1}
		zeros[i] = []int64{0, 0, 0, 0}
	}

	err := compare.Matrices[int64](mock.FromRows(rows), mock.FromRows(zeros), comparators.Exact[int64]{})
	var mismatch *compare.ElementsMismatchError[int64]
	require.ErrorAs(t, err, &mismatch)
	require.Len(t, mismatch.Mismatches, 16)

	capped := mismatch.Report(12)
	require.Equal(t, 12, strings.Count(capped, "\n (")) // 12 listed lines
	require.Contains(t, capped, "... (4 mismatching elements not shown)")

	uncapped := mismatch.Report(-1)
	require.Equal(t, 16, strings.Count(uncapped, "\n ("))
	require.NotContains(t, uncapped, "not shown")

	// A cap beyond the list length changes nothing.
	require.Equal(t, uncapped, mismatch.Report(100))
}

func TestEntryString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Left(5, 0)",
		fmt.Sprint(compare.Entry{Side: compare.SideLeft, Coordinate: compare.Coordinate{Row: 5, Col: 0}}))
	require.Equal(t, "Right(1, 2)",
		fmt.Sprint(compare.Entry{Side: compare.SideRight, Coordinate: compare.Coordinate{Row: 1, Col: 2}}))
}

func TestShapeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2 x 3", compare.Shape{Rows: 2, Cols: 3}.String())
}
