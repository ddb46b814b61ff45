package comparators

import (
	"fmt"

	"github.com/katalvlaran/matcompare/ulp"
)

// Defaults for the two stages of the Float comparator.
const (
	// DefaultEpsilonUlps is the default absolute tolerance expressed as a
	// multiple of the machine epsilon of the scalar type.
	DefaultEpsilonUlps = 4

	// DefaultMaxUlp is the default ULP tolerance of the fallback stage.
	DefaultMaxUlp = 4
)

// Float is a two-stage comparator for floating-point elements: a pair
// matches when it passes an epsilon-sized absolute comparison, or failing
// that, a ULP comparison. Near zero, representable values cluster so
// densely that a ULP distance is meaningless — the epsilon stage covers
// that region; away from zero, ULP distance is the more meaningful
// relative metric and the fallback takes over.
//
// Build with NewFloat and optionally tighten or loosen either stage:
//
//	comp := comparators.NewFloat[float64]().Eps(1e-12).MaxUlp(8)
type Float[F ulp.Float] struct {
	abs Absolute[F]
	ulp Ulp[F]
}

// NewFloat returns a Float comparator with both stages at their defaults:
// 4x machine epsilon absolute tolerance and 4 ULP.
func NewFloat[F ulp.Float]() Float[F] {
	return Float[F]{
		abs: Absolute[F]{Tol: DefaultEpsilonUlps * machineEpsilon[F]()},
		ulp: Ulp[F]{Tol: DefaultMaxUlp},
	}
}

// Eps returns a copy with the absolute-stage tolerance replaced.
// Panics on negative eps (programmer error).
func (c Float[F]) Eps(eps F) Float[F] {
	c.abs = NewAbsolute(eps)
	return c
}

// MaxUlp returns a copy with the ULP-stage tolerance replaced.
func (c Float[F]) MaxUlp(maxUlp uint64) Float[F] {
	c.ulp = Ulp[F]{Tol: maxUlp}
	return c
}

// Compare implements compare.Comparator. The error, when any, is always
// the ULP stage's: the epsilon stage exists only to accept near-zero
// pairs, not to explain rejections.
func (c Float[F]) Compare(a, b F) error {
	if c.abs.Compare(a, b) == nil {
		return nil
	}

	return c.ulp.Compare(a, b)
}

// Description implements compare.Comparator.
func (c Float[F]) Description() string {
	return fmt.Sprintf(
		"Epsilon-sized absolute comparison, followed by an ULP-based comparison.\nEpsilon:       %v\nULP tolerance: %d",
		c.abs.Tol, c.ulp.Tol)
}

// machineEpsilon returns the machine epsilon of F: the gap between 1 and
// the next representable value.
func machineEpsilon[F ulp.Float]() F {
	switch any(F(0)).(type) {
	case float32:
		return F(0x1p-23)
	case float64:
		return F(0x1p-52)
	}
	// ulp.Float is a closed constraint.
	panic("comparators: unreachable")
}
