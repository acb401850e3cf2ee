// Package toposort linearizes directed dependency graphs.
//
// Nodes are identified by dense integer ids in [0, nodeCount); an Edge
// (From, To) constrains From to run before To. A Strategy consumes the
// node count and the edge list and produces a complete execution order,
// or fails with a *CycleError when no such order exists. The edge list
// may contain duplicates; implementations must treat each occurrence as
// an independent constraint.
package toposort

import "fmt"

// Edge is a single ordering constraint: From must be ordered before To.
type Edge struct {
	From int
	To   int
}

// Strategy computes a complete topological order. The returned order
// contains every id in [0, nodeCount) exactly once, with position(From)
// < position(To) for every edge. When the edges admit no such order the
// strategy fails with a *CycleError; a partial order is never returned.
//
// Edge endpoints outside [0, nodeCount) are a programmer error and may
// panic.
type Strategy interface {
	Sort(nodeCount int, edges []Edge) ([]int, error)
}

// CycleError reports that the constraint set admits no complete order.
// Unresolved holds, in ascending order, ids of nodes the strategy could
// not place; it always includes every member of at least one cycle. The
// exact membership beyond that depends on the strategy.
type CycleError struct {
	Unresolved []int
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected involving nodes %v", e.Unresolved)
}
