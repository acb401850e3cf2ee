package graph

import "github.com/vk/framegraphgo/internal/toposort"

// Graph orders nodes under explicitly declared dependencies. Each
// AddDependency call records one edge; repeated declarations accumulate
// as duplicate edges, which the sorter consumes per occurrence.
type Graph[T any] struct {
	Store[T]
	edges  []toposort.Edge
	sorter toposort.Strategy
}

// NewGraph creates an empty dependency graph.
func NewGraph[T any](opts ...Option) *Graph[T] {
	return &Graph[T]{sorter: newSettings(opts).strategy}
}

// AddDependency records that node cannot run until dep has run. Both
// arguments must name stored nodes; an *IndexError is returned otherwise.
// Declaring a node as its own dependency is not rejected here, it
// surfaces as a cycle failure when the order is built.
func (g *Graph[T]) AddDependency(node, dep int) error {
	if !g.contains(node) {
		return &IndexError{ID: node, Len: g.Len()}
	}
	if !g.contains(dep) {
		return &IndexError{ID: dep, Len: g.Len()}
	}
	g.edges = append(g.edges, toposort.Edge{From: dep, To: node})
	return nil
}

// BuildExecutionOrder computes a complete execution order over the stored
// nodes, or fails with a *toposort.CycleError. The accumulated edges are
// handed to the strategy as declared on every call; nothing is cached, so
// repeated calls on an unchanged graph return the same order.
func (g *Graph[T]) BuildExecutionOrder() ([]int, error) {
	return g.sorter.Sort(g.Len(), g.edges)
}
