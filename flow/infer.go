package flow

import (
	"github.com/pkg/errors"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mbflow/ograph"
)

// InferLayers recovers a layer assignment from a correction function
// alone. The domain of f defines the measured vertices; everything else
// sits at layer 0. Each measured vertex is placed one past the deepest
// vertex it induces an order edge to (v ∈ (f(u) ∪ Odd(f(u))) \ {u},
// Pauli-labelled v exempt when pplanes is non-nil), which is exactly the
// maximally-delayed layering for the given f.
//
// Returns ErrOrderCycle when the induced relation is cyclic, so no layer
// assignment exists, and an ograph.ErrInconsistentInput wrap when f
// references vertices outside the graph.
func InferLayers(g *ograph.Graph, f GFlow, pplanes map[int]PPlane) (Layer, error) {
	if g == nil {
		return nil, ograph.ErrGraphNil
	}
	n := g.Order()
	succ := make([]bits.Bits, n)
	for u, fu := range f {
		if u < 0 || u >= n || fu.Num != n {
			return nil, errors.Wrapf(ograph.ErrVertexRange, "f(%d)", u)
		}
		rel := bits.New(n)
		rel.Or(fu, g.OddNeighbors(fu))
		rel.SetBit(u, 0)
		if pplanes != nil {
			rel.IterateOnes(func(v int) bool {
				if pplanes[v].IsPauli() {
					rel.SetBit(v, 0)
				}

				return true
			})
		}
		succ[u] = rel
	}

	const (
		unseen = iota
		active
		done
	)
	state := make([]int, n)
	layer := make(Layer, n)
	cyclic := false

	var visit func(u int) int
	visit = func(u int) int {
		if state[u] == done {
			return layer[u]
		}
		if state[u] == active {
			cyclic = true

			return 0
		}
		state[u] = active
		depth := 0
		if succ[u].Num != 0 { // measured vertex: at least one past its deepest successor
			depth = 1
			succ[u].IterateOnes(func(v int) bool {
				if d := visit(v) + 1; d > depth {
					depth = d
				}

				return !cyclic
			})
		}
		state[u] = done
		layer[u] = depth

		return depth
	}
	for u := 0; u < n; u++ {
		visit(u)
		if cyclic {
			return nil, ErrOrderCycle
		}
	}

	return layer, nil
}
