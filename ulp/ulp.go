// Package ulp measures the distance between two floating-point numbers in
// units in the last place (ULP): the number of representable values that
// separate them.
//
// The ULP distance is only meaningful for two finite numbers of the same
// sign. The package reports the degenerate cases (differing signs, NaN)
// as distinct outcomes instead of a numeric distance, so that callers can
// surface a precise diagnostic. Positive and negative zero are treated as
// an exact, signless match.
package ulp

import "math"

// Float is the set of scalar types a ULP distance is defined for.
// Deliberately closed (no ~): the bit-pattern arithmetic below depends on
// the exact IEEE-754 width of the type.
type Float interface {
	float32 | float64
}

// Kind classifies the outcome of a ULP comparison.
type Kind uint8

const (
	// ExactMatch means the two numbers compare equal with ==.
	// This includes the +0/-0 pair, which is signless by convention.
	ExactMatch Kind = iota

	// Difference means both numbers are comparable and Ulps carries the
	// number of representable values between them.
	Difference

	// IncompatibleSigns means the numbers have different sign bits, so
	// their ULP distance is undefined.
	IncompatibleSigns

	// NaN means at least one of the numbers is NaN.
	NaN
)

// Result is the outcome of a ULP comparison.
// Ulps is only meaningful when Kind == Difference.
type Result struct {
	Kind Kind
	Ulps uint64
}

// Diff64 computes the ULP distance between two float64 values.
//
// Outcome order: exact equality is checked first (covers ±0), then NaN,
// then sign compatibility; only same-sign finite pairs yield a Difference.
// For same-sign values the IEEE-754 bit patterns are monotonic in the
// numeric value, so the distance is the absolute difference of the raw bits.
// Complexity: O(1).
func Diff64(a, b float64) Result {
	if a == b {
		return Result{Kind: ExactMatch}
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return Result{Kind: NaN}
	}
	if math.Signbit(a) != math.Signbit(b) {
		return Result{Kind: IncompatibleSigns}
	}

	ia, ib := math.Float64bits(a), math.Float64bits(b)
	if ia < ib {
		ia, ib = ib, ia
	}

	return Result{Kind: Difference, Ulps: ia - ib}
}

// Diff32 computes the ULP distance between two float32 values.
// Same outcome rules as Diff64, over 32-bit patterns.
// Complexity: O(1).
func Diff32(a, b float32) Result {
	if a == b {
		return Result{Kind: ExactMatch}
	}
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return Result{Kind: NaN}
	}
	if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
		return Result{Kind: IncompatibleSigns}
	}

	ia, ib := math.Float32bits(a), math.Float32bits(b)
	if ia < ib {
		ia, ib = ib, ia
	}

	return Result{Kind: Difference, Ulps: uint64(ia - ib)}
}

// Diff dispatches to Diff32 or Diff64 based on the concrete type of F.
func Diff[F Float](a, b F) Result {
	switch x := any(a).(type) {
	case float32:
		return Diff32(x, any(b).(float32))
	case float64:
		return Diff64(x, any(b).(float64))
	}
	// Float is a closed constraint; no other type can instantiate it.
	panic("ulp: unreachable")
}
