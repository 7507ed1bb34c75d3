package flow

import "github.com/soniakeys/bits"

// Plane is a measurement plane label for gflow finding: the plane of the
// Bloch sphere in which a vertex's measurement axis lies.
type Plane uint8

// Measurement planes. The numeric values of the shared tags coincide with
// PPlane so a Plane converts to the equivalent PPlane by value.
const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

// String implements fmt.Stringer.
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	}

	return "Plane(?)"
}

// PPlane is a measurement label for Pauli flow finding: a plane label or
// one of the Pauli axes X, Y, Z.
type PPlane uint8

// Measurement planes and Pauli axes.
const (
	PPlaneXY PPlane = iota
	PPlaneYZ
	PPlaneXZ
	PPlaneX
	PPlaneY
	PPlaneZ
)

// String implements fmt.Stringer.
func (pp PPlane) String() string {
	switch pp {
	case PPlaneXY:
		return "XY"
	case PPlaneYZ:
		return "YZ"
	case PPlaneXZ:
		return "XZ"
	case PPlaneX:
		return "X"
	case PPlaneY:
		return "Y"
	case PPlaneZ:
		return "Z"
	}

	return "PPlane(?)"
}

// IsPauli reports whether pp is one of the Pauli axes X, Y, Z.
func (pp PPlane) IsPauli() bool { return pp >= PPlaneX && pp <= PPlaneZ }

// PPlane lifts a plane label into the Pauli label space.
func (p Plane) PPlane() PPlane { return PPlane(p) }

// Flow is a causal-flow correction function: f(u) is the single corrector
// of the measured vertex u.
type Flow map[int]int

// GFlow is a set-valued correction function for gflow and Pauli flow:
// f(u) is the correction set of the measured vertex u, as a bitset over
// the vertex universe.
type GFlow map[int]bits.Bits

// Layer assigns every vertex its layer index: 0 exactly for outputs,
// with ℓ(v) < ℓ(u) along every induced order edge u → v. Indexed by vertex.
type Layer []int

// CausalResult is the witness returned by FindCausal.
type CausalResult struct {
	F     Flow
	Layer Layer
}

// Result is the witness returned by FindG and FindPauli.
type Result struct {
	F     GFlow
	Layer Layer
}

// GFlow lifts a causal flow into the set-valued form, one singleton per
// measured vertex, over a universe of n vertices.
func (f Flow) GFlow(n int) GFlow {
	gf := make(GFlow, len(f))
	for u, c := range f {
		s := bits.New(n)
		s.SetBit(c, 1)
		gf[u] = s
	}

	return gf
}
