// Package gf2 provides a dense matrix over GF(2) with word-parallel rows,
// rank-revealing Gauss–Jordan elimination, and multi-RHS back-substitution.
//
// Rows are soniakeys/bits bitsets, so the fundamental primitive — XOR of one
// row into another — touches whole machine words at a time. Right-hand-side
// columns are stored in the same rows, at column indices past the coefficient
// block, and ride through elimination together with the coefficients; after a
// single Eliminate call any number of RHS columns can be tested for
// consistency and back-substituted independently.
//
// The package is deliberately small: it exists to solve the per-layer
// correction systems of flow finding, where one coefficient matrix is shared
// by many targets. Shape violations are programmer errors and panic; there
// are no user-triggered error conditions.
package gf2
