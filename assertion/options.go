// SPDX-License-Identifier: MIT

// Package assertion: functional configuration for the equality assertions.
// Defaults are exported, documented constants; WithX constructors validate
// their parameters and panic on nonsensical values (programmer error, not
// a test outcome).
package assertion

import (
	"github.com/katalvlaran/matcompare/compare"
	"github.com/katalvlaran/matcompare/comparators"
)

// DefaultMaxReports is the number of individual element mismatches listed
// in a failure report before the remainder is summarized as
// "... (N mismatching elements not shown)". Override per call with
// WithMaxReports.
const DefaultMaxReports = 12

// Option configures a single assertion call.
type Option[T compare.Scalar] func(*config[T])

// config is the gathered option state. Fields are unexported; public APIs
// consume ...Option.
type config[T compare.Scalar] struct {
	comp       compare.Comparator[T]
	maxReports int
}

// newConfig applies opts over the defaults: exact comparison, DefaultMaxReports.
func newConfig[T compare.Scalar](opts ...Option[T]) config[T] {
	cfg := config[T]{
		comp:       comparators.Exact[T]{},
		maxReports: DefaultMaxReports,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithComparator selects the elementwise comparison criterion.
// Panics on a nil comparator.
func WithComparator[T compare.Scalar](comp compare.Comparator[T]) Option[T] {
	if comp == nil {
		panic("assertion: nil comparator")
	}

	return func(cfg *config[T]) { cfg.comp = comp }
}

// WithMaxReports caps the number of mismatch lines rendered on failure.
// Panics on a negative cap.
func WithMaxReports[T compare.Scalar](maxReports int) Option[T] {
	if maxReports < 0 {
		panic("assertion: negative mismatch report cap")
	}

	return func(cfg *config[T]) { cfg.maxReports = maxReports }
}
