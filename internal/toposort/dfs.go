package toposort

// Traversal states for the depth-first walk.
const (
	unvisited uint8 = iota
	visiting
	visited
)

// DFS is an alternative Strategy producing a reverse-postorder walk. It
// honors the same contract as Kahn: a complete order, or *CycleError when
// the edges are cyclic. The order it produces for a given input is
// deterministic (roots ascend by id, successors follow edge declaration
// order) but generally differs from Kahn's.
//
// The traversal uses an explicit stack, so deep dependency chains cannot
// overflow the goroutine stack.
type DFS struct{}

// frame tracks how many successors of a node have already been explored,
// letting the walk resume a node after descending into a child.
type frame struct {
	id   int
	next int
}

// Sort implements the Strategy interface using iterative depth-first
// traversal.
func (DFS) Sort(nodeCount int, edges []Edge) ([]int, error) {
	successors := make([][]int, nodeCount)
	for _, e := range edges {
		successors[e.From] = append(successors[e.From], e.To)
	}

	state := make([]uint8, nodeCount)
	postorder := make([]int, 0, nodeCount)
	stack := make([]frame, 0, nodeCount)

	for root := 0; root < nodeCount; root++ {
		if state[root] != unvisited {
			continue
		}
		state[root] = visiting
		stack = append(stack, frame{id: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(successors[top.id]) {
				succ := successors[top.id][top.next]
				top.next++
				switch state[succ] {
				case unvisited:
					state[succ] = visiting
					stack = append(stack, frame{id: succ})
				case visiting:
					// Back edge: succ is an ancestor of the current node,
					// so the path from succ down to here is a cycle. The
					// nodes still marked visiting are that path.
					unresolved := make([]int, 0, len(stack))
					for id := 0; id < nodeCount; id++ {
						if state[id] == visiting {
							unresolved = append(unresolved, id)
						}
					}
					return nil, &CycleError{Unresolved: unresolved}
				}
				continue
			}
			state[top.id] = visited
			postorder = append(postorder, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	// A node finishes only after everything it points at has finished, so
	// reversing the postorder puts every From before its To.
	order := make([]int, nodeCount)
	for i, id := range postorder {
		order[nodeCount-1-i] = id
	}
	return order, nil
}
