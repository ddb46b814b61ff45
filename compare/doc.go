// Package compare implements elementwise comparison of matrices and scalars
// for use in test suites.
//
// The compare package provides:
//
//   - Capability interfaces (Matrix, DenseAccess, SparseAccess) that let any
//     concrete matrix type — dense row-major or sparse triplet — take part in
//     a comparison without conversion.
//   - Matrices, the comparison engine: validates shapes, dispatches on the
//     dense/sparse access pair, and returns either nil or a structured
//     failure listing every mismatching coordinate in deterministic
//     (row, col) order.
//   - Scalars, the single-value counterpart.
//   - A failure taxonomy (dimension mismatch, element mismatches, sparse
//     entry out of bounds, duplicate sparse entry) with package sentinels
//     matchable via errors.Is, structured payloads reachable via errors.As,
//     and a side-swapping Reverse transform used to assert symmetry.
//
// The engine never panics on user-triggered conditions and never
// short-circuits on the first value mismatch: complete diagnostics are the
// entire point. It is a pure function over its inputs, so concurrent calls
// on disjoint or shared inputs need no coordination.
//
// Elementwise equality is pluggable through the Comparator interface; stock
// implementations (exact, absolute tolerance, ULP, combined float) live in
// the comparators package. Ready-made test matrices live in mock, and
// testing.TB-integrated assertions in assertion.
package compare
