package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbflow/flow"
	"github.com/katalvlaran/mbflow/ograph"
)

// requireKind asserts the validation failure class and offending node.
func requireKind(t *testing.T, err error, kind flow.ValidationKind, node int) *flow.ValidationError {
	t.Helper()
	var verr *flow.ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
	require.Equal(t, kind, verr.Kind)
	require.Equal(t, node, verr.Node)

	return verr
}

// TestValidateCausal_BadOrder: the chain witness with the layers of 0 and
// 1 swapped; vertex 0's corrector now sits above it in the order.
func TestValidateCausal_BadOrder(t *testing.T) {
	og := chainOpen(t)
	err := flow.ValidateCausal(og, flow.Flow{0: 1, 1: 2}, flow.Layer{1, 2, 0})
	verr := requireKind(t, err, flow.InconsistentFlowOrder, 0)
	require.Equal(t, 1, verr.Other)
}

// TestValidate_BadDomain: f defined on an output vertex.
func TestValidate_BadDomain(t *testing.T) {
	og := chainOpen(t)
	f := flow.Flow{0: 1, 1: 2, 2: 1}.GFlow(3)
	err := flow.Validate(og, pplanesAllXY(og), f, flow.Layer{2, 1, 0})
	requireKind(t, err, flow.InvalidFlowDomain, 2)

	// and missing on a measured vertex
	f = flow.Flow{0: 1}.GFlow(3)
	err = flow.Validate(og, pplanesAllXY(og), f, flow.Layer{2, 1, 0})
	requireKind(t, err, flow.InvalidFlowDomain, 1)
}

// TestValidate_LayerSanity: outputs must sit at layer 0 and only they may.
func TestValidate_LayerSanity(t *testing.T) {
	og := chainOpen(t)
	f := flow.Flow{0: 1, 1: 2}.GFlow(3)

	err := flow.Validate(og, pplanesAllXY(og), f, flow.Layer{2, 1, 3})
	verr := requireKind(t, err, flow.ExcessiveNonZeroLayer, 2)
	require.Equal(t, 3, verr.Layer)

	err = flow.Validate(og, pplanesAllXY(og), f, flow.Layer{2, 0, 0})
	requireKind(t, err, flow.ExcessiveZeroLayer, 1)
}

// TestValidate_BadCodomain: corrections must avoid the input set.
func TestValidate_BadCodomain(t *testing.T) {
	// 1 corrects through the input 0
	og := mustOpen(t, 3, [][2]int{{0, 1}, {1, 2}}, []int{0}, []int{2})
	f := flow.GFlow{0: setOf(3, 1), 1: setOf(3, 0, 2)}
	err := flow.Validate(og, pplanesAllXY(og), f, flow.Layer{2, 1, 0})
	requireKind(t, err, flow.InvalidFlowCodomain, 1)
}

// TestValidate_BrokenPlane: an XY vertex absent from its own odd
// neighbourhood.
func TestValidate_BrokenPlane(t *testing.T) {
	// f(0) = {2}: Odd({2}) = {1}, which misses 0 — XY parity broken.
	og := mustOpen(t, 3, [][2]int{{0, 1}, {1, 2}}, nil, []int{1, 2})
	f := flow.GFlow{0: setOf(3, 2)}
	err := flow.ValidateG(og, map[int]flow.Plane{0: flow.PlaneXY}, f, flow.Layer{1, 0, 0})
	verr := requireKind(t, err, flow.InconsistentFlowPlane, 0)
	require.Equal(t, flow.PPlaneXY, verr.Label)

	// same witness under the Pauli validator reports the PPlane kind
	err = flow.Validate(og, map[int]flow.PPlane{0: flow.PPlaneXY}, f, flow.Layer{1, 0, 0})
	requireKind(t, err, flow.InconsistentFlowPPlane, 0)
}

// TestValidate_BrokenPauli: a Pauli-Y vertex outside Odd(f(u)).
func TestValidate_BrokenPauli(t *testing.T) {
	og := mustOpen(t, 2, [][2]int{{0, 1}}, nil, []int{1})
	f := flow.GFlow{0: setOf(2, 0)} // Odd({0}) = {1}, so 0 ∉ Odd(f(0))
	err := flow.Validate(og, map[int]flow.PPlane{0: flow.PPlaneY}, f, flow.Layer{1, 0})
	verr := requireKind(t, err, flow.InconsistentFlowPPlane, 0)
	require.Equal(t, flow.PPlaneY, verr.Label)
}

// TestValidate_MeasSpec: labels must cover exactly the measured vertices
// with in-range values; ValidateG additionally rejects Pauli labels.
func TestValidate_MeasSpec(t *testing.T) {
	og := chainOpen(t)
	f := flow.Flow{0: 1, 1: 2}.GFlow(3)
	layer := flow.Layer{2, 1, 0}

	err := flow.Validate(og, map[int]flow.PPlane{0: flow.PPlaneXY}, f, layer)
	requireKind(t, err, flow.InvalidMeasurementSpec, 1)

	meas := pplanesAllXY(og)
	meas[2] = flow.PPlaneXY
	err = flow.Validate(og, meas, f, layer)
	requireKind(t, err, flow.InvalidMeasurementSpec, 2)

	err = flow.ValidateG(og, map[int]flow.Plane{0: flow.PlaneXY, 1: flow.Plane(flow.PPlaneY)}, f, layer)
	requireKind(t, err, flow.InvalidMeasurementSpec, 1)
}

// TestValidate_PauliOrderExemption: a witness ordering a non-Pauli vertex
// against an uncorrected Pauli vertex passes, the same witness with the
// Pauli label dropped fails.
func TestValidate_PauliOrderExemption(t *testing.T) {
	og := chainOpen(t)
	f := flow.GFlow{0: setOf(3, 1), 1: setOf(3, 2)}
	layer := flow.Layer{1, 1, 0} // 0 and 1 share a layer; edge 0 → 1 unordered

	pplanes := map[int]flow.PPlane{0: flow.PPlaneXY, 1: flow.PPlaneY}
	require.NoError(t, flow.Validate(og, pplanes, f, layer))

	err := flow.Validate(og, pplanesAllXY(og), f, layer)
	verr := requireKind(t, err, flow.InconsistentFlowOrder, 0)
	require.Equal(t, 1, verr.Other)
}

// TestValidate_EnsureOptimal: a valid but over-deep layering passes the
// plain validator and fails the optimality check.
func TestValidate_EnsureOptimal(t *testing.T) {
	og := chainOpen(t)
	f := flow.Flow{0: 1, 1: 2}
	slack := flow.Layer{3, 1, 0}

	require.NoError(t, flow.ValidateCausal(og, f, slack))
	err := flow.ValidateCausal(og, f, slack, flow.WithEnsureOptimal())
	require.ErrorIs(t, err, flow.ErrNotMaximallyDelayed)

	// the finder's own witness is optimal by construction
	res, err := flow.FindCausal(og)
	require.NoError(t, err)
	require.NoError(t, flow.ValidateCausal(og, res.F, res.Layer, flow.WithEnsureOptimal()))
}

// TestValidate_LayerLength: the layer slice must cover all vertices.
func TestValidate_LayerLength(t *testing.T) {
	og := chainOpen(t)
	f := flow.Flow{0: 1, 1: 2}.GFlow(3)
	err := flow.Validate(og, pplanesAllXY(og), f, flow.Layer{2, 1})
	require.ErrorIs(t, err, ograph.ErrInconsistentInput)
}

// TestValidate_CausalShape: the causal validator insists on a single
// neighbouring corrector.
func TestValidate_CausalShape(t *testing.T) {
	og := chainOpen(t)
	// 2 is not adjacent to 0
	err := flow.ValidateCausal(og, flow.Flow{0: 2, 1: 2}, flow.Layer{2, 1, 0})
	requireKind(t, err, flow.InvalidFlowCodomain, 0)

	// out-of-range corrector
	err = flow.ValidateCausal(og, flow.Flow{0: 9, 1: 2}, flow.Layer{2, 1, 0})
	requireKind(t, err, flow.InvalidFlowCodomain, 0)
}

// TestValidate_FinderAgreement: every finder's witness re-validates,
// optimality included.
func TestValidate_FinderAgreement(t *testing.T) {
	og := contentionOpen(t)
	planes := planesAllXY(og)
	res, err := flow.FindG(og, planes)
	require.NoError(t, err)
	require.NoError(t, flow.ValidateG(og, planes, res.F, res.Layer, flow.WithEnsureOptimal()))

	pplanes := pplanesAllXY(og)
	pres, err := flow.FindPauli(og, pplanes)
	require.NoError(t, err)
	require.NoError(t, flow.Validate(og, pplanes, pres.F, pres.Layer, flow.WithEnsureOptimal()))
}
