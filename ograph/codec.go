package ograph

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
)

// Codec maps arbitrary host vertex identifiers to the dense universe
// {0..n-1} and back. Indices are assigned in comparator-sorted order, so
// for a given identifier set the assignment — and every witness computed
// over it — is deterministic.
type Codec struct {
	v2i map[interface{}]int
	i2v []interface{}
}

// NewCodec registers the given identifiers under cmp ordering. Duplicates
// collapse. The comparator must be consistent with equality of the
// identifiers (gods/utils ships comparators for the common key types).
func NewCodec(cmp utils.Comparator, ids ...interface{}) *Codec {
	tree := redblacktree.NewWith(cmp)
	for _, id := range ids {
		tree.Put(id, nil)
	}
	c := &Codec{
		v2i: make(map[interface{}]int, tree.Size()),
		i2v: tree.Keys(),
	}
	for i, id := range c.i2v {
		c.v2i[id] = i
	}

	return c
}

// Len reports the number of registered identifiers.
func (c *Codec) Len() int { return len(c.i2v) }

// Encode translates a host identifier to its dense index.
func (c *Codec) Encode(id interface{}) (int, error) {
	i, ok := c.v2i[id]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVertex, "%v", id)
	}

	return i, nil
}

// Decode translates a dense index back to the host identifier.
func (c *Codec) Decode(i int) (interface{}, error) {
	if i < 0 || i >= len(c.i2v) {
		return nil, errors.Wrapf(ErrUnknownVertex, "index %d", i)
	}

	return c.i2v[i], nil
}

// EncodeSlice translates a batch of identifiers.
func (c *Codec) EncodeSlice(ids []interface{}) ([]int, error) {
	out := make([]int, len(ids))
	for k, id := range ids {
		i, err := c.Encode(id)
		if err != nil {
			return nil, err
		}
		out[k] = i
	}

	return out, nil
}

// EncodeEdges translates a batch of identifier pairs into index pairs
// suitable for New.
func (c *Codec) EncodeEdges(edges [][2]interface{}) ([][2]int, error) {
	out := make([][2]int, len(edges))
	for k, e := range edges {
		u, err := c.Encode(e[0])
		if err != nil {
			return nil, err
		}
		v, err := c.Encode(e[1])
		if err != nil {
			return nil, err
		}
		out[k] = [2]int{u, v}
	}

	return out, nil
}
