package flow

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mbflow/gf2"
	"github.com/katalvlaran/mbflow/ograph"
)

// FindG computes the maximally-delayed generalized flow of og under the
// given measurement planes (one per measured vertex).
//
// It returns:
//   - res : the witness — set-valued f and the layer map
//   - err : ErrNoFlow when no gflow exists, or an
//     ograph.ErrInconsistentInput wrap for malformed input
//
// Steps per round, with C = Corrected \ I the candidate correctors and
// U = V \ Corrected the uncorrected vertices:
//  1. Assemble the |U| × |C| submatrix A of the adjacency matrix, plus one
//     RHS column per frontier vertex u: e_u for XY, N(u)|U for YZ, and
//     N(u)|U ⊕ e_u for XZ (YZ/XZ additionally force u ∈ f(u), which is
//     folded into the RHS; with u an input those labels are unsolvable).
//  2. Eliminate A once; the RHS columns ride along (Gauss–Jordan).
//  3. Every frontier vertex with a consistent system joins the layer;
//     its f(u) is the support of the back-substituted solution, the
//     lexicographically smallest one since free variables stay zero.
//
// Complexity:
//
//	Time:   O(k_max · n³ / word_size), k_max ≤ n rounds.
//	Memory: O(n² / word_size) scratch per round.
func FindG(og *ograph.Open, planes map[int]Plane, opts ...Option) (*Result, error) {
	if og == nil {
		return nil, ErrNilOpenGraph
	}
	o := gatherOptions(opts...)
	meas, err := liftPlanes(og, planes)
	if err != nil {
		return nil, err
	}

	p := newPeeler(og, o)
	noPauli := bits.New(og.Order())
	solve := func(p *peeler) []assignment {
		solved := solvePlaneRound(p, meas, noPauli)
		sortAssignments(solved)

		return solved
	}
	if err = p.run(solve); err != nil {
		return nil, err
	}

	return &Result{F: p.f, Layer: p.layer}, nil
}

// solvePlaneRound solves one round of the shared plane-label system: rows
// are the uncorrected vertices minus the order-exempt set, columns are
// Corrected \ I, and every plane-labelled frontier vertex contributes one
// RHS column. Used by FindG (empty exempt set) and by FindPauli for its
// plane-labelled candidates (exempt = uncorrected Pauli vertices).
func solvePlaneRound(p *peeler, meas map[int]PPlane, exempt bits.Bits) []assignment {
	g := p.og.Graph()
	n := g.Order()
	unc := p.uncorrected()

	rowSet := bits.New(n)
	rowSet.AndNot(unc, exempt)
	rows := rowSet.Slice()
	rowOf := make([]int, n)
	for ri, v := range rows {
		rowOf[v] = ri
	}

	colSet := bits.New(n)
	colSet.AndNot(p.corrected, p.og.Inputs())
	cols := colSet.Slice()

	// frontier candidates of this system: uncorrected, plane-labelled
	var cands []int
	unc.IterateOnes(func(u int) bool {
		if !meas[u].IsPauli() {
			cands = append(cands, u)
		}

		return true
	})
	if len(cands) == 0 {
		return nil
	}

	// 1) coefficient block A = adjacency restricted to rows × cols
	m := gf2.New(len(rows), len(cols)+len(cands))
	for ri, v := range rows {
		nv := g.Neighbors(v)
		for ci, w := range cols {
			if nv.Bit(w) == 1 {
				m.SetBit(ri, ci, 1)
			}
		}
	}

	// per-candidate RHS columns
	dead := make([]bool, len(cands))
	for ji, u := range cands {
		rhs := len(cols) + ji
		switch meas[u] {
		case PPlaneXY:
			m.SetBit(rowOf[u], rhs, 1)
		case PPlaneYZ, PPlaneXZ:
			if p.og.IsInput(u) {
				dead[ji] = true // u ∈ f(u) required but inputs cannot correct

				continue
			}
			nu := g.Neighbors(u)
			for ri, v := range rows {
				if nu.Bit(v) == 1 {
					m.SetBit(ri, rhs, 1)
				}
			}
			if meas[u] == PPlaneXZ {
				m.FlipBit(rowOf[u], rhs)
			}
		}
	}

	// 2) one elimination for every RHS
	pivots := m.Eliminate(len(cols))

	// 3) back-substitute each candidate
	var solved []assignment
	for ji, u := range cands {
		if dead[ji] {
			continue
		}
		rhs := len(cols) + ji
		if !m.Solvable(pivots, rhs) {
			continue
		}
		x := m.Solution(pivots, len(cols), rhs)
		fu := bits.New(n)
		x.IterateOnes(func(ci int) bool {
			fu.SetBit(cols[ci], 1)

			return true
		})
		if meas[u] == PPlaneYZ || meas[u] == PPlaneXZ {
			fu.SetBit(u, 1)
		}
		solved = append(solved, assignment{u: u, f: fu})
	}

	return solved
}
