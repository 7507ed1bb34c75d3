package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbflow/flow"
	"github.com/katalvlaran/mbflow/ograph"
)

// TestFindCausal_Chain covers the linear chain: each vertex is corrected
// by its successor, layers count down toward the output.
func TestFindCausal_Chain(t *testing.T) {
	og := chainOpen(t)
	res, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.Equal(t, flow.Flow{0: 1, 1: 2}, res.F)
	require.Equal(t, flow.Layer{2, 1, 0}, res.Layer)

	require.NoError(t, flow.ValidateCausal(og, res.F, res.Layer))
}

// TestFindCausal_NilGraph rejects a nil open graph.
func TestFindCausal_NilGraph(t *testing.T) {
	_, err := flow.FindCausal(nil)
	require.ErrorIs(t, err, ograph.ErrInconsistentInput)
}

// TestFindCausal_Contention verifies the no-flow fixed point: every
// candidate corrector has two or more uncorrected neighbours.
func TestFindCausal_Contention(t *testing.T) {
	_, err := flow.FindCausal(contentionOpen(t))
	require.ErrorIs(t, err, flow.ErrNoFlow)
}

// TestFindCausal_CompleteBipartite: K2,2 with both vertices of one side
// as inputs admits no causal flow.
func TestFindCausal_CompleteBipartite(t *testing.T) {
	og := mustOpen(t, 4, [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}}, []int{0, 1}, []int{2, 3})
	_, err := flow.FindCausal(og)
	require.ErrorIs(t, err, flow.ErrNoFlow)
}

// TestFindCausal_AllOutputs: V = O yields the empty witness.
func TestFindCausal_AllOutputs(t *testing.T) {
	og := mustOpen(t, 2, [][2]int{{0, 1}}, nil, []int{0, 1})
	res, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.Empty(t, res.F)
	require.Equal(t, flow.Layer{0, 0}, res.Layer)
}

// TestFindCausal_EmptyGraph: n = 0 succeeds trivially.
func TestFindCausal_EmptyGraph(t *testing.T) {
	og := mustOpen(t, 0, nil, nil, nil)
	res, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.Empty(t, res.F)
	require.Empty(t, res.Layer)
}

// TestFindCausal_AllInputsNoCorrector: with I = V and a measured vertex
// left, no corrector is ever available.
func TestFindCausal_AllInputsNoCorrector(t *testing.T) {
	og := mustOpen(t, 2, [][2]int{{0, 1}}, []int{0, 1}, []int{1})
	_, err := flow.FindCausal(og)
	require.ErrorIs(t, err, flow.ErrNoFlow)
}

// TestFindCausal_Disconnected solves two chains independently; the result
// is the disjoint union of the per-component witnesses.
func TestFindCausal_Disconnected(t *testing.T) {
	og := mustOpen(t, 6,
		[][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}},
		[]int{0, 3}, []int{2, 5})
	res, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.Equal(t, flow.Flow{0: 1, 1: 2, 3: 4, 4: 5}, res.F)
	require.Equal(t, flow.Layer{2, 1, 0, 2, 1, 0}, res.Layer)
}

// TestFindCausal_CorrectorTieBreak: two corrected vertices can each claim
// the same frontier vertex; the smaller corrector id must win.
func TestFindCausal_CorrectorTieBreak(t *testing.T) {
	// 0 adjacent to both outputs 1 and 2
	og := mustOpen(t, 3, [][2]int{{0, 1}, {0, 2}}, nil, []int{1, 2})
	res, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.Equal(t, flow.Flow{0: 1}, res.F)
	require.Equal(t, flow.Layer{1, 0, 0}, res.Layer)
}

// TestFindCausal_Deterministic: identical inputs yield identical witnesses.
func TestFindCausal_Deterministic(t *testing.T) {
	og := mustOpen(t, 6,
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}},
		[]int{0}, []int{5})
	res1, err := flow.FindCausal(og)
	require.NoError(t, err)
	res2, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.Equal(t, res1.F, res2.F)
	require.Equal(t, res1.Layer, res2.Layer)
}

// TestFindCausal_InputAlsoOutput: a vertex in both I and O is an output
// first — never measured, never correcting.
func TestFindCausal_InputAlsoOutput(t *testing.T) {
	// 0─1 with 1 ∈ I ∩ O: vertex 0 cannot be corrected by the input-output 1.
	og := mustOpen(t, 2, [][2]int{{0, 1}}, []int{1}, []int{1})
	_, err := flow.FindCausal(og)
	require.ErrorIs(t, err, flow.ErrNoFlow)

	// same shape, but 1 is a pure output: the flow exists
	og = mustOpen(t, 2, [][2]int{{0, 1}}, nil, []int{1})
	res, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.Equal(t, flow.Flow{0: 1}, res.F)
}
