package flow_test

import (
	"testing"

	"github.com/soniakeys/bits"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbflow/flow"
	"github.com/katalvlaran/mbflow/ograph"
)

// mustOpen builds an open graph or fails the test.
func mustOpen(t *testing.T, n int, edges [][2]int, inputs, outputs []int) *ograph.Open {
	t.Helper()
	g, err := ograph.New(n, edges)
	require.NoError(t, err)
	og, err := ograph.NewOpen(g, inputs, outputs)
	require.NoError(t, err)

	return og
}

// setOf builds a bitset over n vertices from a member list.
func setOf(n int, members ...int) bits.Bits {
	s := bits.New(n)
	for _, v := range members {
		s.SetBit(v, 1)
	}

	return s
}

// planesAllXY labels every measured vertex XY.
func planesAllXY(og *ograph.Open) map[int]flow.Plane {
	planes := make(map[int]flow.Plane)
	for v := 0; v < og.Order(); v++ {
		if og.IsMeasured(v) {
			planes[v] = flow.PlaneXY
		}
	}

	return planes
}

// pplanesAllXY labels every measured vertex XY in the Pauli label space.
func pplanesAllXY(og *ograph.Open) map[int]flow.PPlane {
	pplanes := make(map[int]flow.PPlane)
	for v := 0; v < og.Order(); v++ {
		if og.IsMeasured(v) {
			pplanes[v] = flow.PPlaneXY
		}
	}

	return pplanes
}

// requireSupport asserts that a correction bitset has exactly the given
// members.
func requireSupport(t *testing.T, fu bits.Bits, members ...int) {
	t.Helper()
	want := setOf(fu.Num, members...)
	require.True(t, fu.Equal(want), "support = %v; want %v", fu.Slice(), members)
}

// chainOpen builds the linear chain 0─1─2 with I = {0}, O = {2}.
func chainOpen(t *testing.T) *ograph.Open {
	t.Helper()

	return mustOpen(t, 3, [][2]int{{0, 1}, {1, 2}}, []int{0}, []int{2})
}

// contentionOpen builds an open graph with no causal flow but a one-layer
// gflow: three inputs 0..2, three outputs 3..5, every output adjacent to
// at least two inputs, yet the output columns span the input indicators.
//
//	0──3──1   1──4──2   0──5──2
//	                       │
//	                       1
func contentionOpen(t *testing.T) *ograph.Open {
	t.Helper()
	edges := [][2]int{{0, 3}, {1, 3}, {1, 4}, {2, 4}, {0, 5}, {1, 5}, {2, 5}}

	return mustOpen(t, 6, edges, []int{0, 1, 2}, []int{3, 4, 5})
}
