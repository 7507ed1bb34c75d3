package flow

import (
	"github.com/plan-systems/klog"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mbflow/gf2"
	"github.com/katalvlaran/mbflow/ograph"
)

// FindPauli computes the maximally-delayed Pauli flow of og under the
// given measurement labels (plane or Pauli axis, one per measured vertex).
//
// Pauli flow extends gflow on three fronts:
//   - per-label constraints on the measured vertex u itself: the X axis
//     requires exactly one of u ∈ f(u), u ∈ Odd(f(u)) ("XY or YZ applies"),
//     Y requires u ∈ Odd(f(u)) with u ∈ f(u) free ("XY or XZ"), and Z
//     requires u ∈ f(u) with the odd-neighbourhood constraint waived
//     ("YZ or XZ");
//   - uncorrected Pauli-labelled vertices impose no parity rows: their
//     corrections commute past the Pauli eigenstate, so they are exempt
//     from the order;
//   - for a Pauli-labelled candidate the corrector columns additionally
//     include every uncorrected Pauli vertex (minus inputs).
//
// Plane-labelled candidates share a single elimination per round exactly as
// in FindG; each Pauli-labelled candidate gets its own small system because
// both its row set (its own row) and its column set (itself as a membership
// variable) differ per candidate.
//
// Returns ErrNoFlow when no Pauli flow exists, or an
// ograph.ErrInconsistentInput wrap for malformed input.
func FindPauli(og *ograph.Open, pplanes map[int]PPlane, opts ...Option) (*Result, error) {
	if og == nil {
		return nil, ErrNilOpenGraph
	}
	o := gatherOptions(opts...)
	if err := checkMeasurement(og, pplanes, true); err != nil {
		return nil, err
	}
	if !anyPauli(pplanes) {
		klog.V(2).Infof("flow: no Pauli labels present; FindG solves this instance faster")
	}

	p := newPeeler(og, o)
	solve := func(p *peeler) []assignment {
		exempt := pauliUncorrected(p, pplanes)
		solved := solvePlaneRound(p, pplanes, exempt)
		solved = append(solved, solvePauliRound(p, pplanes, exempt)...)
		sortAssignments(solved)

		return solved
	}
	if err := p.run(solve); err != nil {
		return nil, err
	}

	return &Result{F: p.f, Layer: p.layer}, nil
}

// anyPauli reports whether any label is a Pauli axis.
func anyPauli(meas map[int]PPlane) bool {
	for _, pp := range meas {
		if pp.IsPauli() {
			return true
		}
	}

	return false
}

// pauliUncorrected collects the uncorrected Pauli-labelled vertices.
func pauliUncorrected(p *peeler, meas map[int]PPlane) bits.Bits {
	exempt := bits.New(p.og.Order())
	p.uncorrected().IterateOnes(func(u int) bool {
		if meas[u].IsPauli() {
			exempt.SetBit(u, 1)
		}

		return true
	})

	return exempt
}

// solvePauliRound solves the per-candidate systems of the Pauli-labelled
// frontier vertices.
//
// For candidate u with label λ(u):
//   - columns: (Corrected ∪ PauliUncorrected) \ I \ {u}; for X and Y a
//     non-input u additionally becomes a membership variable column
//     (for Z membership is forced instead and folded into the RHS);
//   - rows: uncorrected non-Pauli vertices, plus u's own row for X and Y
//     (the Z constraint on u is waived);
//   - row u for X carries a flipped diagonal entry so that the equation
//     reads [u ∈ Odd(S)] ⊕ [u ∈ S] = 1; for Y the diagonal stays zero and
//     the equation reads [u ∈ Odd(S)] = 1.
func solvePauliRound(p *peeler, meas map[int]PPlane, exempt bits.Bits) []assignment {
	g := p.og.Graph()
	n := g.Order()
	unc := p.uncorrected()

	baseRows := bits.New(n)
	baseRows.AndNot(unc, exempt)
	baseCols := bits.New(n)
	baseCols.Or(p.corrected, exempt)
	baseCols.AndNot(baseCols, p.og.Inputs())

	var solved []assignment
	exempt.IterateOnes(func(u int) bool {
		label := meas[u]
		if label == PPlaneZ && p.og.IsInput(u) {
			return true // u ∈ f(u) required but inputs cannot correct
		}

		uBit := bits.New(n)
		uBit.SetBit(u, 1)

		colSet := bits.New(n)
		colSet.AndNot(baseCols, uBit)
		withUCol := (label == PPlaneX || label == PPlaneY) && !p.og.IsInput(u)
		if withUCol {
			colSet.SetBit(u, 1)
		}
		cols := colSet.Slice()

		rowSrc := baseRows
		if label == PPlaneX || label == PPlaneY {
			rowSet := bits.New(n)
			rowSet.Or(baseRows, uBit)
			rowSrc = rowSet
		}
		rows := rowSrc.Slice()

		m := gf2.New(len(rows), len(cols)+1)
		rhs := len(cols)
		for ri, v := range rows {
			nv := g.Neighbors(v)
			for ci, w := range cols {
				b := nv.Bit(w)
				if label == PPlaneX && v == u && w == u {
					b = 1 // membership variable enters u's own equation
				}
				m.SetBit(ri, ci, b)
			}
		}
		switch label {
		case PPlaneX, PPlaneY:
			for ri, v := range rows {
				if v == u {
					m.SetBit(ri, rhs, 1)
				}
			}
		case PPlaneZ:
			nu := g.Neighbors(u)
			for ri, v := range rows {
				if nu.Bit(v) == 1 {
					m.SetBit(ri, rhs, 1)
				}
			}
		}

		pivots := m.Eliminate(len(cols))
		if !m.Solvable(pivots, rhs) {
			return true
		}
		x := m.Solution(pivots, len(cols), rhs)
		fu := bits.New(n)
		x.IterateOnes(func(ci int) bool {
			fu.SetBit(cols[ci], 1)

			return true
		})
		if label == PPlaneZ {
			fu.SetBit(u, 1)
		}
		solved = append(solved, assignment{u: u, f: fu})

		return true
	})

	return solved
}
