// Package matcompare is a toolkit for comparing matrices and scalars in
// test suites, with precise, human-readable failure reports.
//
// 🚀 What is matcompare?
//
//	A small, representation-agnostic comparison engine that brings together:
//		• Elementwise comparison of dense and sparse matrices, in any mix
//		• Structural validation of sparse input (bounds, duplicate entries)
//		• Pluggable comparison criteria: exact, absolute tolerance, ULP,
//		  and a two-stage float comparator with sane defaults
//		• Deterministic reports that pinpoint every mismatching coordinate
//		• Test assertions that turn a failure into a readable t.Fatalf
//
// ✨ Why choose matcompare?
//
//   - Honest float comparison – ULP-based criteria instead of ad-hoc epsilons
//   - Rock-solid reports – every mismatch listed with coordinates and values
//   - Representation-agnostic – adapt any matrix type via a tiny interface
//   - Extensible – implement Comparator once, use it everywhere
//
// Under the hood, everything is organized in focused subpackages:
//
//	compare/     — core types, the comparison engine, failure taxonomy
//	comparators/ — exact, absolute, ULP and two-stage float criteria
//	ulp/         — ULP distance between floating-point numbers
//	mock/        — simple dense & sparse matrices for tests and examples
//	assertion/   — MatrixEqual / ScalarEqual for use inside Go tests
//	genmat/      — gopter generators of random matrices for property tests
//
// Quick example:
//
//	assertion.MatrixEqual(t, got, want,
//		assertion.WithComparator[float64](comparators.NewFloat[float64]()))
//
// fails the test with a report such as:
//
//	Matrices X (left) and Y (right) have 1 mismatched element pairs.
//	 (0, 2): x = 3, y = 9.
//	Comparison criterion: exact equality x == y.
//
//	go get github.com/katalvlaran/matcompare
package matcompare
