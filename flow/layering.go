package flow

import (
	"sort"

	"github.com/plan-systems/klog"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mbflow/ograph"
)

// assignment couples a vertex solved in the current round with its
// correction set.
type assignment struct {
	u int
	f bits.Bits
}

// layerSolver is the strategy slot of the layer-peeling skeleton: given
// the current state it returns every vertex solvable in this round, in
// ascending vertex order, with its correction set. An empty result signals
// a fixed point.
type layerSolver func(p *peeler) []assignment

// peeler holds the mutable state shared by all three finders: the
// corrected-so-far set, the per-vertex layer map, the accumulated
// correction function, and the round counter.
type peeler struct {
	og        *ograph.Open
	opts      Options
	corrected bits.Bits
	layer     Layer
	f         GFlow
	round     int
	remaining int
}

// newPeeler seeds the state: outputs are corrected at layer 0.
func newPeeler(og *ograph.Open, opts Options) *peeler {
	n := og.Order()
	p := &peeler{
		og:        og,
		opts:      opts,
		corrected: bits.New(n),
		layer:     make(Layer, n),
		f:         make(GFlow),
	}
	p.corrected.Or(p.corrected, og.Outputs())
	p.remaining = n - p.corrected.OnesCount()

	return p
}

// uncorrected returns V \ Corrected as a fresh bitset. Since the corrected
// set always contains the outputs, every uncorrected vertex is measured.
func (p *peeler) uncorrected() bits.Bits {
	u := bits.New(p.og.Order())
	u.Not(p.corrected)

	return u
}

// run drives the generic loop of layer peeling:
//
//	Corrected ← O; k ← 1
//	while some measured vertex is uncorrected:
//	    Solved ← solve(round k)
//	    if Solved is empty: fail (no flow)
//	    assign layer k, record f, grow Corrected; k ← k+1
func (p *peeler) run(solve layerSolver) error {
	for p.remaining > 0 {
		p.round++
		solved := solve(p)
		if len(solved) == 0 {
			p.tracef("round %d: fixed point, %d vertices uncorrected", p.round, p.remaining)

			return ErrNoFlow
		}
		for _, a := range solved {
			p.layer[a.u] = p.round
			p.f[a.u] = a.f
			p.corrected.SetBit(a.u, 1)
		}
		p.remaining -= len(solved)
		p.tracef("round %d: solved %d vertices, %d remaining", p.round, len(solved), p.remaining)
	}

	return nil
}

// sortAssignments orders a round's assignments by ascending vertex id.
func sortAssignments(as []assignment) {
	sort.Slice(as, func(i, j int) bool { return as[i].u < as[j].u })
}

// tracef emits a structured trace event; debug-level by default, promoted
// to info under WithVerbose.
func (p *peeler) tracef(format string, args ...interface{}) {
	if p.opts.verbose {
		klog.Infof("flow: "+format, args...)

		return
	}
	klog.V(2).Infof("flow: "+format, args...)
}
