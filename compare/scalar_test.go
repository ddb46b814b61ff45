// SPDX-License-Identifier: MIT
package compare_test

import (
	"testing"

	"github.com/katalvlaran/matcompare/compare"
	"github.com/katalvlaran/matcompare/comparators"
	"github.com/stretchr/testify/require"
)

func TestScalars(t *testing.T) {
	t.Parallel()

	t.Run("match", func(t *testing.T) {
		require.NoError(t, compare.Scalars(2, 2, comparators.Exact[int]{}))
		require.NoError(t, compare.Scalars(2.0, 2.0, comparators.Exact[float64]{}))
		require.NoError(t, compare.Scalars(3.0, 3.5, comparators.NewAbsolute(0.5)))
	})

	t.Run("mismatch carries full payload", func(t *testing.T) {
		comp := comparators.Exact[float64]{}
		err := compare.Scalars(0.2, 0.3, comp)
		require.ErrorIs(t, err, compare.ErrScalarMismatch)

		var mismatch *compare.ScalarMismatchError[float64]
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, &compare.ScalarMismatchError[float64]{
			Left:                  0.2,
			Right:                 0.3,
			Err:                   comparators.ExactError{},
			ComparatorDescription: comp.Description(),
		}, mismatch)
	})

	t.Run("report text", func(t *testing.T) {
		err := compare.Scalars(0.2, 0.3, comparators.Exact[float64]{})
		require.EqualError(t, err,
			`Scalars x and y do not compare equal.

x = 0.2, y = 0.3.

Comparison criterion: exact equality x == y.`)
	})

	t.Run("reverse swaps the values", func(t *testing.T) {
		err := compare.Scalars(1.0, 2.0, comparators.Exact[float64]{})
		failure, ok := err.(compare.Failure)
		require.True(t, ok)

		reversed := compare.Scalars(2.0, 1.0, comparators.Exact[float64]{})
		require.Equal(t, reversed, failure.Reverse())
	})

	t.Run("absolute reason is rendered", func(t *testing.T) {
		err := compare.Scalars(int64(3), int64(7), comparators.NewAbsolute[int64](1))
		require.ErrorContains(t, err, "x = 3, y = 7. Absolute error: 4.")
	})
}
