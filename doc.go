// Package mbflow computes flow structures on open graphs arising in
// measurement-based quantum computing (MBQC).
//
// Given an undirected graph with designated input and output vertex sets
// and a measurement plane for every non-output vertex, mbflow decides
// whether the open graph admits a causal flow, a generalized flow (gflow),
// or a Pauli flow, and returns a witness: a correction function f together
// with a layer assignment encoding a consistent partial order. All three
// finders produce the maximally-delayed flow and are deterministic.
//
// The work is organized under three subpackages:
//
//	gf2/    — dense GF(2) bit-matrix: row XOR, Gauss–Jordan elimination,
//	          multi-RHS back-substitution
//	ograph/ — open graph model: bitset adjacency, input/output sets,
//	          odd neighbourhoods, components, host-vertex codec
//	flow/   — the three finders, the witness validator, layer inference,
//	          measurement plane tags
//
// Quick ASCII example (a linear chain with one input and one output):
//
//	0───1───2        I = {0}, O = {2}
//
// admits the causal flow f(0)=1, f(1)=2 with layers (2,1,0).
//
//	go get github.com/katalvlaran/mbflow
package mbflow
