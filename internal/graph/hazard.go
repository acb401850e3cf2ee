package graph

import (
	"slices"

	"github.com/vk/framegraphgo/internal/toposort"
)

// accessKind distinguishes the two ways a node can touch a resource.
type accessKind uint8

const (
	readAccess accessKind = iota
	writeAccess
)

// access is one entry in the chronological access log.
type access[R comparable] struct {
	node     int
	resource R
	kind     accessKind
}

// HazardGraph orders nodes by the resources they read and write. AddRead
// and AddWrite append to a single chronological access log; building the
// order replays that log and derives one edge per hazard:
//
//   - a read depends on the most recent write to the resource (RAW)
//   - a write depends on the previous write to the resource (WAW)
//   - a write depends on every read since the previous write (WAR)
//
// Two reads never constrain each other, and a node's own accesses never
// constrain the node against itself. Declaration order carries meaning:
// the same accesses declared in a different order describe a different
// workload and may derive different edges.
//
// Explicit dependencies can be mixed in with AddDependency; they are
// merged with the derived edges before sorting.
//
// R may be any comparable type. Equality is the only capability required
// of a resource key; names, handles and pointers all work.
type HazardGraph[T any, R comparable] struct {
	Store[T]
	log      []access[R]
	explicit []toposort.Edge
	sorter   toposort.Strategy
}

// NewHazardGraph creates an empty resource-hazard graph.
func NewHazardGraph[T any, R comparable](opts ...Option) *HazardGraph[T, R] {
	return &HazardGraph[T, R]{sorter: newSettings(opts).strategy}
}

// AddRead records that node reads resource. Returns an *IndexError when
// node does not name a stored node.
func (g *HazardGraph[T, R]) AddRead(node int, resource R) error {
	if !g.contains(node) {
		return &IndexError{ID: node, Len: g.Len()}
	}
	g.log = append(g.log, access[R]{node: node, resource: resource, kind: readAccess})
	return nil
}

// AddWrite records that node writes resource. Returns an *IndexError when
// node does not name a stored node.
func (g *HazardGraph[T, R]) AddWrite(node int, resource R) error {
	if !g.contains(node) {
		return &IndexError{ID: node, Len: g.Len()}
	}
	g.log = append(g.log, access[R]{node: node, resource: resource, kind: writeAccess})
	return nil
}

// AddDependency records an explicit edge dep -> node alongside the
// derived hazards. Both arguments must name stored nodes.
func (g *HazardGraph[T, R]) AddDependency(node, dep int) error {
	if !g.contains(node) {
		return &IndexError{ID: node, Len: g.Len()}
	}
	if !g.contains(dep) {
		return &IndexError{ID: dep, Len: g.Len()}
	}
	g.explicit = append(g.explicit, toposort.Edge{From: dep, To: node})
	return nil
}

// BuildExecutionOrder derives hazard edges from the access log, merges in
// the explicit edges, and hands the combined set to the strategy. The log
// is replayed from scratch on every call; with no mutation in between,
// repeated calls return the same order.
func (g *HazardGraph[T, R]) BuildExecutionOrder() ([]int, error) {
	edges := g.deriveEdges()
	edges = append(edges, g.explicit...)
	return g.sorter.Sort(g.Len(), edges)
}

// resourceState accumulates the hazard-relevant history of one resource
// while the log is replayed. It exists only during derivation.
type resourceState struct {
	// lastWriter is the id of the most recent writer, or -1 before the
	// first write.
	lastWriter int
	// readers holds the distinct nodes that read the resource since the
	// last write, in first-read order.
	readers []int
}

// deriveEdges replays the access log in declaration order, tracking the
// last writer and the readers since that write for each resource. The log
// is the only source of ordering; no map is ever iterated, so the derived
// edges are identical on every replay.
func (g *HazardGraph[T, R]) deriveEdges() []toposort.Edge {
	states := make(map[R]*resourceState)
	var edges []toposort.Edge

	for _, a := range g.log {
		state, ok := states[a.resource]
		if !ok {
			state = &resourceState{lastWriter: -1}
			states[a.resource] = state
		}

		switch a.kind {
		case readAccess:
			if state.lastWriter >= 0 && state.lastWriter != a.node {
				edges = append(edges, toposort.Edge{From: state.lastWriter, To: a.node})
			}
			if !slices.Contains(state.readers, a.node) {
				state.readers = append(state.readers, a.node)
			}

		case writeAccess:
			// The WAW edge is emitted even when reads intervened and the
			// WAR edges below already imply the ordering. The sorter
			// consumes duplicates symmetrically, so the extra edge is
			// harmless, and it keeps the writer chain intact on its own.
			if state.lastWriter >= 0 && state.lastWriter != a.node {
				edges = append(edges, toposort.Edge{From: state.lastWriter, To: a.node})
			}
			for _, reader := range state.readers {
				if reader != a.node {
					edges = append(edges, toposort.Edge{From: reader, To: a.node})
				}
			}
			state.readers = state.readers[:0]
			state.lastWriter = a.node
		}
	}

	return edges
}
