// Package ograph: sentinel error set. All constructors return these
// sentinels (possibly wrapped with context) and tests match them via
// errors.Is.

package ograph

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInconsistentInput is the base class for every malformed-input
// condition: out-of-range vertices, self-loops, bad input/output sets.
// Finders propagate it unchanged, so errors.Is(err, ErrInconsistentInput)
// identifies caller bugs as opposed to the absence of a flow.
var ErrInconsistentInput = errors.New("ograph: inconsistent input")

// ErrNegativeOrder is returned when a graph is requested with n < 0.
var ErrNegativeOrder = fmt.Errorf("%w: negative vertex count", ErrInconsistentInput)

// ErrVertexRange is returned when an edge endpoint or an input/output
// vertex lies outside [0, n).
var ErrVertexRange = fmt.Errorf("%w: vertex out of range", ErrInconsistentInput)

// ErrSelfLoop is returned when an edge joins a vertex to itself.
var ErrSelfLoop = fmt.Errorf("%w: self-loop detected", ErrInconsistentInput)

// ErrGraphNil is returned when a nil *Graph is passed to NewOpen.
var ErrGraphNil = fmt.Errorf("%w: graph is nil", ErrInconsistentInput)

// ErrUnknownVertex is returned by Codec when a host identifier or index
// was not registered.
var ErrUnknownVertex = errors.New("ograph: unknown vertex")
