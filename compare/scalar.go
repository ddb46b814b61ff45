// SPDX-License-Identifier: MIT

package compare

// Scalars compares two scalar values under the given comparator.
// Returns nil on a match, or a *ScalarMismatchError carrying both values,
// the comparator's error and its description. Complexity: O(1) plus the
// comparator itself.
func Scalars[T Scalar](left, right T, comp Comparator[T]) error {
	if err := comp.Compare(left, right); err != nil {
		return &ScalarMismatchError[T]{
			Left:                  left,
			Right:                 right,
			Err:                   err,
			ComparatorDescription: comp.Description(),
		}
	}

	return nil
}
