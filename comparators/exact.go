package comparators

// Exact compares elements with the == operator.
// The zero value is ready to use: Exact[float64]{}.
type Exact[T comparable] struct{}

// Compare reports nil iff a == b.
func (Exact[T]) Compare(a, b T) error {
	if a == b {
		return nil
	}

	return ExactError{}
}

// Description implements compare.Comparator.
func (Exact[T]) Description() string {
	return "exact equality x == y."
}

// ExactError is the (payload-free) failure of the exact comparator.
type ExactError struct{}

func (ExactError) Error() string {
	return "comparators: values are not exactly equal"
}

// FailureReason is empty: an exact mismatch line needs no extra reason,
// the two printed values speak for themselves.
func (ExactError) FailureReason() string {
	return ""
}
