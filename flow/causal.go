package flow

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mbflow/ograph"
)

// FindCausal computes the maximally-delayed causal flow of og, where every
// measured vertex is implicitly measured in the XY plane.
//
// It returns:
//   - res : the witness — f assigning each measured vertex its single
//     corrector, and the layer map (outputs at 0)
//   - err : ErrNoFlow when no causal flow exists, or an
//     ograph.ErrInconsistentInput wrap for malformed input
//
// Steps per round:
//  1. Scan candidate correctors c ∈ Corrected \ I in ascending order.
//  2. A corrector whose neighbourhood meets the uncorrected set in exactly
//     one vertex u claims u: f(u) = c. The first (smallest) corrector to
//     claim u wins.
//  3. All claimed vertices join the current layer; a round with no claims
//     on a non-empty frontier is a fixed point — no flow.
//
// Complexity:
//
//	Time:   O(k_max · n² / word_size), k_max ≤ n rounds.
//	Memory: O(n² / word_size) held by the graph; O(n / word_size) scratch.
func FindCausal(og *ograph.Open, opts ...Option) (*CausalResult, error) {
	if og == nil {
		return nil, ErrNilOpenGraph
	}
	o := gatherOptions(opts...)

	p := newPeeler(og, o)
	if err := p.run(solveCausalLayer); err != nil {
		return nil, err
	}

	f := make(Flow, len(p.f))
	for u, s := range p.f {
		f[u] = s.Slice()[0]
	}

	return &CausalResult{F: f, Layer: p.layer}, nil
}

// solveCausalLayer claims every frontier vertex owning a free corrector.
func solveCausalLayer(p *peeler) []assignment {
	g := p.og.Graph()
	n := g.Order()
	unc := p.uncorrected()

	claimed := bits.New(n)
	scratch := bits.New(n)
	var solved []assignment
	for c := 0; c < n; c++ {
		// candidate correctors are corrected non-inputs
		if p.corrected.Bit(c) == 0 || p.og.IsInput(c) {
			continue
		}
		scratch.And(g.Neighbors(c), unc)
		if scratch.OnesCount() != 1 {
			continue
		}
		u := scratch.Slice()[0]
		if claimed.Bit(u) == 1 {
			continue // a smaller corrector already claimed u
		}
		claimed.SetBit(u, 1)
		fu := bits.New(n)
		fu.SetBit(c, 1)
		solved = append(solved, assignment{u: u, f: fu})
	}
	// ascending vertex order for determinism of the commit
	sortAssignments(solved)

	return solved
}
