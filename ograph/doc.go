// Package ograph models the open graphs of measurement-based quantum
// computing: an undirected simple graph over the dense vertex universe
// {0..n-1} together with input and output vertex subsets.
//
// Adjacency is one bitset per vertex, so neighbourhood XOR — the odd
// neighbourhood Odd(S) = {v : |adj(v) ∩ S| odd} — is word-parallel.
// Graphs are validated on construction (range checks, self-loop rejection)
// and immutable afterwards; a vertex may belong to both the input and the
// output set (it is then treated output-first and never measured).
//
// Hosts with arbitrary vertex identifiers adapt them to the dense universe
// through Codec, which assigns indices in comparator-sorted order so that
// encodings — and therefore every downstream witness — are deterministic.
package ograph
