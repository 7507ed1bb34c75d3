package flow

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mbflow/ograph"
)

// vmode selects which label family a witness is validated against.
type vmode uint8

const (
	modeCausal vmode = iota
	modePlane
	modePPlane
)

// Validate checks a Pauli-flow witness (f, layer) against og and the
// measurement labels, without re-solving. It verifies, in a deterministic
// vertex-ascending scan order:
//
//  1. the measurement spec covers exactly V \ O with in-range labels;
//  2. the domain of f is exactly V \ O;
//  3. layer sanity: ℓ(v) = 0 exactly for outputs;
//  4. per measured vertex u: codomain f(u) ⊆ V \ I, the label's
//     membership/parity constraints on (u ∈ f(u), u ∈ Odd(f(u))), and
//     every induced order edge u → v ∈ (f(u) ∪ Odd(f(u))) \ {u} with
//     Pauli-labelled v exempt — requiring ℓ(v) < ℓ(u).
//
// The first violation is returned as a *ValidationError; nil means the
// witness is valid. With WithEnsureOptimal the instance is re-solved and
// the layering must additionally equal the maximally-delayed one
// (ErrNotMaximallyDelayed otherwise).
func Validate(og *ograph.Open, meas map[int]PPlane, f GFlow, layer Layer, opts ...Option) error {
	return validate(og, meas, f, layer, modePPlane, gatherOptions(opts...))
}

// ValidateG checks a gflow witness: identical to Validate restricted to
// the plane labels XY/YZ/XZ; Pauli labels are rejected as invalid
// measurement specs and no vertex is order-exempt.
func ValidateG(og *ograph.Open, planes map[int]Plane, f GFlow, layer Layer, opts ...Option) error {
	meas := make(map[int]PPlane, len(planes))
	for v, p := range planes {
		meas[v] = PPlane(p)
	}

	return validate(og, meas, f, layer, modePlane, gatherOptions(opts...))
}

// ValidateCausal checks a causal-flow witness: every measured vertex is
// implicitly XY-labelled and f(u) must be a single non-input neighbour
// of u.
func ValidateCausal(og *ograph.Open, f Flow, layer Layer, opts ...Option) error {
	if og == nil {
		return ErrNilOpenGraph
	}
	n := og.Order()
	meas := make(map[int]PPlane, n)
	for v := 0; v < n; v++ {
		if og.IsMeasured(v) {
			meas[v] = PPlaneXY
		}
	}
	gf := make(GFlow, len(f))
	for u, c := range f {
		s := bits.New(n)
		if c >= 0 && c < n {
			s.SetBit(c, 1)
		}
		gf[u] = s // out-of-range correctors surface as codomain violations
	}

	return validate(og, meas, gf, layer, modeCausal, gatherOptions(opts...))
}

// validate is the shared witness checker behind the three entry points.
func validate(og *ograph.Open, meas map[int]PPlane, f GFlow, layer Layer, mode vmode, o Options) error {
	if og == nil {
		return ErrNilOpenGraph
	}
	g := og.Graph()
	n := g.Order()
	if len(layer) != n {
		return ErrLayerLength
	}

	// 1) measurement spec over exactly V \ O
	if bad, ok := minOutOfRangeKeyPP(meas, n); ok {
		return &ValidationError{Kind: InvalidMeasurementSpec, Node: bad}
	}
	for v := 0; v < n; v++ {
		pp, ok := meas[v]
		switch {
		case og.IsMeasured(v) && !ok:
			return &ValidationError{Kind: InvalidMeasurementSpec, Node: v}
		case !og.IsMeasured(v) && ok:
			return &ValidationError{Kind: InvalidMeasurementSpec, Node: v}
		case ok && (pp > PPlaneZ || (mode != modePPlane && pp.IsPauli())):
			return &ValidationError{Kind: InvalidMeasurementSpec, Node: v, Label: pp}
		}
	}

	// 2) domain of f is exactly V \ O
	if bad, ok := minOutOfRangeKeyF(f, n); ok {
		return &ValidationError{Kind: InvalidFlowDomain, Node: bad}
	}
	for v := 0; v < n; v++ {
		_, ok := f[v]
		if og.IsMeasured(v) != ok {
			return &ValidationError{Kind: InvalidFlowDomain, Node: v}
		}
	}

	// 3) layer sanity: zero exactly on outputs
	for v := 0; v < n; v++ {
		if og.IsOutput(v) {
			if layer[v] != 0 {
				return &ValidationError{Kind: ExcessiveNonZeroLayer, Node: v, Layer: layer[v]}
			}
		} else if layer[v] <= 0 {
			return &ValidationError{Kind: ExcessiveZeroLayer, Node: v}
		}
	}

	// 4) per-vertex constraints
	scratch := bits.New(n)
	for u := 0; u < n; u++ {
		fu, ok := f[u]
		if !ok {
			continue
		}
		if fu.Num != n {
			return &ValidationError{Kind: InvalidFlowCodomain, Node: u}
		}
		// codomain: corrections never touch inputs
		scratch.And(fu, og.Inputs())
		if !scratch.AllZeros() {
			return &ValidationError{Kind: InvalidFlowCodomain, Node: u}
		}
		if mode == modeCausal {
			if fu.OnesCount() != 1 || !g.HasEdge(u, fu.Slice()[0]) {
				return &ValidationError{Kind: InvalidFlowCodomain, Node: u}
			}
		}

		odd := g.OddNeighbors(fu)
		if !labelSatisfied(meas[u], fu.Bit(u) == 1, odd.Bit(u) == 1) {
			kind := InconsistentFlowPlane
			if mode == modePPlane {
				kind = InconsistentFlowPPlane
			}

			return &ValidationError{Kind: kind, Node: u, Label: meas[u]}
		}

		// induced order edges u → v, ascending by v
		rel := bits.New(n)
		rel.Or(fu, odd)
		rel.SetBit(u, 0)
		bad := -1
		rel.IterateOnes(func(v int) bool {
			if mode == modePPlane && meas[v].IsPauli() {
				return true // order-exempt: correction commutes with the eigenstate
			}
			if layer[v] >= layer[u] {
				bad = v

				return false
			}

			return true
		})
		if bad >= 0 {
			return &ValidationError{Kind: InconsistentFlowOrder, Node: u, Other: bad}
		}
	}

	if o.ensureOptimal {
		return ensureOptimal(og, meas, layer, mode)
	}

	return nil
}

// labelSatisfied evaluates the per-label membership/parity constraint pair
// on (u ∈ f(u), u ∈ Odd(f(u))).
func labelSatisfied(label PPlane, inF, inOdd bool) bool {
	switch label {
	case PPlaneXY:
		return !inF && inOdd
	case PPlaneYZ:
		return inF && !inOdd
	case PPlaneXZ:
		return inF && inOdd
	case PPlaneX:
		return inF != inOdd // exactly one of "XY or YZ applies"
	case PPlaneY:
		return inOdd
	case PPlaneZ:
		return inF
	}

	return false
}

// ensureOptimal re-solves the instance with the matching finder and
// requires the supplied layering to be the maximally-delayed one.
func ensureOptimal(og *ograph.Open, meas map[int]PPlane, layer Layer, mode vmode) error {
	var (
		found Layer
		err   error
	)
	switch mode {
	case modeCausal:
		var res *CausalResult
		if res, err = FindCausal(og); err == nil {
			found = res.Layer
		}
	case modePlane:
		planes := make(map[int]Plane, len(meas))
		for v, pp := range meas {
			planes[v] = Plane(pp)
		}
		var res *Result
		if res, err = FindG(og, planes); err == nil {
			found = res.Layer
		}
	case modePPlane:
		var res *Result
		if res, err = FindPauli(og, meas); err == nil {
			found = res.Layer
		}
	}
	if err != nil {
		return err
	}
	for v := range layer {
		if layer[v] != found[v] {
			return ErrNotMaximallyDelayed
		}
	}

	return nil
}

// minOutOfRangeKeyPP returns the smallest out-of-range key of meas.
func minOutOfRangeKeyPP(meas map[int]PPlane, n int) (int, bool) {
	bad, found := 0, false
	for k := range meas {
		if (k < 0 || k >= n) && (!found || k < bad) {
			bad, found = k, true
		}
	}

	return bad, found
}

// minOutOfRangeKeyF returns the smallest out-of-range key of f.
func minOutOfRangeKeyF(f GFlow, n int) (int, bool) {
	bad, found := 0, false
	for k := range f {
		if (k < 0 || k >= n) && (!found || k < bad) {
			bad, found = k, true
		}
	}

	return bad, found
}
