// Package comparators provides the stock elementwise comparators consumed
// by the compare engine and the assertion helpers.
//
// Four criteria are available:
//
//   - Exact — plain == comparison, any scalar type.
//   - Absolute — inclusive absolute tolerance |x - y| <= tol, computed as
//     max-min so it is safe for unsigned integer types.
//   - Ulp — floating-point comparison by units in the last place, with
//     distinct outcomes for incompatible signs and NaN.
//   - Float — a conservative two-stage default for floating point: a tiny
//     epsilon-sized absolute check (covering the near-zero region where ULP
//     distance is meaningless) falling back to a ULP check (the meaningful
//     relative metric away from zero). Inspired by Bruce Dawson's
//     "Comparing Floating Point Numbers, 2012 Edition".
//
// All comparators are deterministic and symmetric: Compare(a, b) and
// Compare(b, a) report equivalent outcomes, and tolerances are inclusive.
// Any type with a Compare/Description method pair satisfies
// compare.Comparator, so custom criteria plug in the same way.
package comparators
