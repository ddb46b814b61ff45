package comparators

import (
	"fmt"

	"github.com/katalvlaran/matcompare/ulp"
)

// Ulp compares floating-point elements by their ULP distance, inclusively:
// the pair matches when the numbers are exactly equal (including +0/-0) or
// at most Tol representable values apart. Pairs with differing signs or a
// NaN operand never match; the error reports those conditions distinctly
// instead of a meaningless numeric distance.
type Ulp[F ulp.Float] struct {
	// Tol is the maximum tolerated ULP distance (inclusive).
	Tol uint64
}

// Compare implements compare.Comparator.
func (c Ulp[F]) Compare(a, b F) error {
	res := ulp.Diff(a, b)
	switch res.Kind {
	case ulp.ExactMatch:
		return nil
	case ulp.Difference:
		if res.Ulps <= c.Tol {
			return nil
		}
	}

	return UlpError{Result: res}
}

// Description implements compare.Comparator.
func (c Ulp[F]) Description() string {
	return fmt.Sprintf("ULP difference less than or equal to %d. See documentation for details.", c.Tol)
}

// UlpError carries the ULP comparison outcome for a mismatched pair.
type UlpError struct {
	Result ulp.Result
}

func (e UlpError) Error() string {
	return e.FailureReason()
}

// FailureReason implements compare.Reasoner.
func (e UlpError) FailureReason() string {
	switch e.Result.Kind {
	case ulp.Difference:
		return fmt.Sprintf("Difference: %d ULP.", e.Result.Ulps)
	case ulp.IncompatibleSigns:
		return "Numbers have incompatible signs."
	case ulp.NaN:
		return "NaN is not comparable to anything."
	}

	return ""
}
