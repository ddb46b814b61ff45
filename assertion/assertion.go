// Package assertion turns comparison failures into test failures.
//
// MatrixEqual and ScalarEqual wrap the compare engine for direct use in
// tests: on mismatch they render the structured failure into the
// deterministic human-readable report and fail the test via t.Fatalf.
// The default criterion is exact equality; pick another comparator or a
// different mismatch display cap with the functional options:
//
//	assertion.MatrixEqual(t, got, want,
//		assertion.WithComparator[float64](comparators.NewFloat[float64]()))
//
// Panicking/failing is strictly this package's job — the engine itself
// only ever returns values.
package assertion

import (
	"testing"

	"github.com/katalvlaran/matcompare/compare"
)

// reporter is satisfied by failures that support capped rendering
// (currently compare.ElementsMismatchError across all instantiations).
type reporter interface {
	Report(maxReports int) string
}

// render produces the final report text for a comparison failure,
// applying the mismatch display cap where the failure supports it.
func render(err error, maxReports int) string {
	if r, ok := err.(reporter); ok {
		return r.Report(maxReports)
	}

	return err.Error()
}

// MatrixEqual asserts that left and right compare equal elementwise.
// On failure the test is stopped with a report pinpointing every
// mismatching coordinate (capped at DefaultMaxReports lines unless
// overridden with WithMaxReports).
func MatrixEqual[T compare.Scalar](t testing.TB, left, right compare.Matrix[T], opts ...Option[T]) {
	t.Helper()

	cfg := newConfig(opts...)
	if err := compare.Matrices(left, right, cfg.comp); err != nil {
		t.Fatalf("\n%s\n", render(err, cfg.maxReports))
	}
}

// ScalarEqual asserts that two scalar values compare equal.
func ScalarEqual[T compare.Scalar](t testing.TB, left, right T, opts ...Option[T]) {
	t.Helper()

	cfg := newConfig(opts...)
	if err := compare.Scalars(left, right, cfg.comp); err != nil {
		t.Fatalf("\n%s\n", render(err, cfg.maxReports))
	}
}
