package ograph

import (
	"github.com/pkg/errors"
	"github.com/soniakeys/bits"
)

// Open is an open graph: a Graph together with input and output vertex
// sets. The sets need not be disjoint; a vertex in both is an output first
// and is never measured. Immutable after NewOpen.
type Open struct {
	g   *Graph
	in  bits.Bits
	out bits.Bits
}

// NewOpen attaches input and output sets to g. Every listed vertex must
// lie in [0, n); duplicates are tolerated.
func NewOpen(g *Graph, inputs, outputs []int) (*Open, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	og := &Open{g: g, in: bits.New(g.n), out: bits.New(g.n)}
	for _, v := range inputs {
		if v < 0 || v >= g.n {
			return nil, errors.Wrapf(ErrVertexRange, "input %d", v)
		}
		og.in.SetBit(v, 1)
	}
	for _, v := range outputs {
		if v < 0 || v >= g.n {
			return nil, errors.Wrapf(ErrVertexRange, "output %d", v)
		}
		og.out.SetBit(v, 1)
	}

	return og, nil
}

// Graph returns the underlying graph.
func (og *Open) Graph() *Graph { return og.g }

// Order reports the number of vertices n.
func (og *Open) Order() int { return og.g.n }

// Inputs returns the input bitset. The returned bitset is a view and must
// not be modified.
func (og *Open) Inputs() bits.Bits { return og.in }

// Outputs returns the output bitset. The returned bitset is a view and
// must not be modified.
func (og *Open) Outputs() bits.Bits { return og.out }

// IsInput reports whether v is an input vertex.
func (og *Open) IsInput(v int) bool { return og.in.Bit(v) == 1 }

// IsOutput reports whether v is an output vertex.
func (og *Open) IsOutput(v int) bool { return og.out.Bit(v) == 1 }

// IsMeasured reports whether v is measured, i.e. not an output.
func (og *Open) IsMeasured(v int) bool { return og.out.Bit(v) == 0 }

// Measured returns V \ O as a fresh bitset.
func (og *Open) Measured() bits.Bits {
	m := bits.New(og.g.n)
	m.Not(og.out)

	return m
}
