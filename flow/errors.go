// Package flow: sentinel error set and the structured validation error.
// Finders return sentinels matched via errors.Is; the validator returns a
// *ValidationError whose Kind (and fields) tests can pin exactly.

package flow

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mbflow/ograph"
)

// ErrNoFlow is returned by a finder when the layer peeling reaches a fixed
// point with measured vertices still uncorrected: no flow of the requested
// kind exists.
var ErrNoFlow = errors.New("flow: no flow exists")

// ErrNilOpenGraph is returned when a nil *ograph.Open is supplied.
var ErrNilOpenGraph = fmt.Errorf("flow: %w: open graph is nil", ograph.ErrInconsistentInput)

// ErrMissingMeasurement is returned when a measured vertex has no
// measurement label.
var ErrMissingMeasurement = fmt.Errorf("flow: %w: measurement missing for measured vertex", ograph.ErrInconsistentInput)

// ErrExcessiveMeasurement is returned when a label is supplied for an
// output vertex or an unknown vertex.
var ErrExcessiveMeasurement = fmt.Errorf("flow: %w: excessive measurement planes specified", ograph.ErrInconsistentInput)

// ErrInvalidMeasurement is returned when a label value is out of range.
var ErrInvalidMeasurement = fmt.Errorf("flow: %w: invalid measurement label", ograph.ErrInconsistentInput)

// ErrLayerLength is returned when a supplied layer slice does not cover
// all vertices.
var ErrLayerLength = fmt.Errorf("flow: %w: layers must be specified for all nodes", ograph.ErrInconsistentInput)

// ErrNotMaximallyDelayed is returned by validators running with
// WithEnsureOptimal when the witness is valid but its layering differs
// from the maximally-delayed one.
var ErrNotMaximallyDelayed = errors.New("flow: layering is not maximally delayed")

// ErrOrderCycle is returned by InferLayers when the induced order relation
// is cyclic, so no layer assignment can be determined.
var ErrOrderCycle = errors.New("flow: cannot determine layers: induced order is cyclic")

// ValidationKind discriminates the witness-validation failure classes.
type ValidationKind uint8

// Validation failure kinds. Exactly one is reported per failed validation,
// carrying the offending identifiers.
const (
	ExcessiveNonZeroLayer ValidationKind = iota + 1 // output with a positive layer
	ExcessiveZeroLayer                              // non-output at layer 0 (or below)
	InvalidFlowCodomain                             // f(u) contains a forbidden vertex
	InvalidFlowDomain                               // f defined outside, or missing inside, V \ O
	InvalidMeasurementSpec                          // label missing, excessive, or out of range
	InconsistentFlowOrder                           // induced order edge violates ℓ(v) < ℓ(u)
	InconsistentFlowPlane                           // plane membership/parity constraint broken
	InconsistentFlowPPlane                          // as above, for Pauli labels
)

// ValidationError reports the first witness violation found. Node is the
// offending vertex (the source u of the order edge for
// InconsistentFlowOrder, with Other the target v). Layer and Label are
// populated by the kinds that carry them.
type ValidationError struct {
	Kind  ValidationKind
	Node  int
	Other int
	Layer int
	Label PPlane
}

// Error implements error.
func (e *ValidationError) Error() string {
	switch e.Kind {
	case ExcessiveNonZeroLayer:
		return fmt.Sprintf("flow: layer-%d node %d inside output nodes", e.Layer, e.Node)
	case ExcessiveZeroLayer:
		return fmt.Sprintf("flow: zero-layer node %d outside output nodes", e.Node)
	case InvalidFlowCodomain:
		return fmt.Sprintf("flow: f(%d) has invalid codomain", e.Node)
	case InvalidFlowDomain:
		return fmt.Sprintf("flow: f(%d) has invalid domain", e.Node)
	case InvalidMeasurementSpec:
		return fmt.Sprintf("flow: node %d has invalid measurement specification", e.Node)
	case InconsistentFlowOrder:
		return fmt.Sprintf("flow: flow-order inconsistency on nodes (%d, %d)", e.Node, e.Other)
	case InconsistentFlowPlane:
		return fmt.Sprintf("flow: broken %s measurement on node %d", Plane(e.Label), e.Node)
	case InconsistentFlowPPlane:
		return fmt.Sprintf("flow: broken %s measurement on node %d", e.Label, e.Node)
	}

	return "flow: invalid witness"
}
