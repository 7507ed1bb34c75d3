package ograph

import (
	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"github.com/soniakeys/bits"
	"github.com/spakin/disjoint"
)

// Graph is an undirected simple graph over the vertex universe {0..n-1},
// stored as one adjacency bitset per vertex. Immutable after New.
type Graph struct {
	n   int
	m   int // number of distinct edges
	adj []bits.Bits
}

// New builds a Graph from an explicit edge list.
//
// Validation:
//   - n must be ≥ 0 (ErrNegativeOrder);
//   - both endpoints of every edge must lie in [0, n) (ErrVertexRange);
//   - endpoints must be distinct (ErrSelfLoop).
//
// Duplicate pairs, in either orientation, collapse to a single edge.
//
// Time Complexity: O(n + |edges|)
// Memory: O(n² / word_size)
func New(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	g := &Graph{n: n, adj: make([]bits.Bits, n)}
	for v := range g.adj {
		g.adj[v] = bits.New(n)
	}

	seen := mapset.NewSet()
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, errors.Wrapf(ErrVertexRange, "edge (%d,%d)", u, v)
		}
		if u == v {
			return nil, errors.Wrapf(ErrSelfLoop, "vertex %d", u)
		}
		if v < u {
			u, v = v, u
		}
		if !seen.Add([2]int{u, v}) {
			continue // duplicate pair
		}
		g.adj[u].SetBit(v, 1)
		g.adj[v].SetBit(u, 1)
	}
	g.m = seen.Cardinality()

	return g, nil
}

// Order reports the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Size reports the number of distinct edges.
func (g *Graph) Size() int { return g.m }

// Neighbors returns the adjacency bitset of v. The returned bitset is a
// view into the graph and must not be modified.
func (g *Graph) Neighbors(v int) bits.Bits { return g.adj[v] }

// HasEdge reports whether {u, v} is an edge.
func (g *Graph) HasEdge(u, v int) bool { return g.adj[u].Bit(v) == 1 }

// Degree reports the number of neighbours of v.
func (g *Graph) Degree(v int) int { return g.adj[v].OnesCount() }

// OddNeighbors computes Odd(S) = {v : |adj(v) ∩ S| is odd} as the XOR of
// the adjacency rows selected by s.
//
// Time Complexity: O(|S| · n / word_size)
func (g *Graph) OddNeighbors(s bits.Bits) bits.Bits {
	odd := bits.New(g.n)
	s.IterateOnes(func(v int) bool {
		odd.Xor(odd, g.adj[v])

		return true
	})

	return odd
}

// Components returns the connected components as vertex lists, each sorted
// ascending, ordered by their smallest member. Uses disjoint-set union.
//
// Time Complexity: O(n² / word_size · α(n))
func (g *Graph) Components() [][]int {
	elems := make([]*disjoint.Element, g.n)
	for v := range elems {
		elems[v] = disjoint.NewElement()
	}
	for v := 0; v < g.n; v++ {
		g.adj[v].IterateOnes(func(u int) bool {
			if u > v {
				disjoint.Union(elems[v], elems[u])
			}

			return true
		})
	}

	index := make(map[*disjoint.Element]int, g.n)
	var comps [][]int
	for v := 0; v < g.n; v++ {
		root := elems[v].Find()
		ci, ok := index[root]
		if !ok {
			ci = len(comps)
			index[root] = ci
			comps = append(comps, nil)
		}
		comps[ci] = append(comps[ci], v)
	}

	return comps
}
