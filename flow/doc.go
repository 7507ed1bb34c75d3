// Package flow decides whether an open graph admits a causal flow, a
// generalized flow (gflow), or a Pauli flow, returning a witness when one
// exists, and validates externally supplied witnesses against the same
// semantics.
//
// A witness is a correction function f — for every measured vertex u a set
// of correction vertices f(u) — together with a layer assignment ℓ encoding
// the reversed partial order: outputs sit at layer 0 and ℓ(v) < ℓ(u) for
// every vertex v whose correction must happen after u is measured.
//
// All three finders share one layer-peeling skeleton: starting from the
// output set they repeatedly solve, over GF(2), for the maximal set of
// vertices whose correction can be expressed in terms of vertices already
// handled. Solving every currently-solvable vertex in the same round yields
// the maximally-delayed flow, and with vertex-ascending tie-breaks and
// zeroed free variables the witness is a pure function of the input.
//
//   - FindCausal — single-corrector flows, measurement planes all XY
//   - FindG      — set-valued corrections, planes XY/YZ/XZ
//   - FindPauli  — adds the Pauli labels X/Y/Z with relaxed constraints
//   - Validate / ValidateG / ValidateCausal — witness checking without
//     re-solving, with precise failure reporting
//   - InferLayers — recover a layer assignment from f alone
//
// Finders report the absence of a flow with ErrNoFlow and malformed inputs
// with errors wrapping ograph.ErrInconsistentInput. Validators report the
// first violation as a *ValidationError pinpointing the offending vertex,
// order edge, or measurement label.
package flow
