package toposort

// Kahn is the default Strategy. It repeatedly emits nodes whose remaining
// in-degree is zero, consuming outgoing edges as it goes.
//
// The ready queue is FIFO and is seeded with the dependency-free nodes in
// ascending id order, so ties among unconstrained nodes always resolve by
// identity and the produced order is deterministic for a given input.
// Duplicate edges each contribute to the target's in-degree, and each is
// consumed separately before the target becomes ready.
type Kahn struct{}

// Sort implements the Strategy interface using Kahn's algorithm.
func (Kahn) Sort(nodeCount int, edges []Edge) ([]int, error) {
	inDegree := make([]int, nodeCount)
	successors := make([][]int, nodeCount)
	for _, e := range edges {
		successors[e.From] = append(successors[e.From], e.To)
		inDegree[e.To]++
	}

	queue := make([]int, 0, nodeCount)
	for id := 0; id < nodeCount; id++ {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, nodeCount)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, succ := range successors[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) < nodeCount {
		// Every node left with a positive in-degree sits on or behind a
		// cycle; none of them was ever appended to the order.
		unresolved := make([]int, 0, nodeCount-len(order))
		for id := 0; id < nodeCount; id++ {
			if inDegree[id] > 0 {
				unresolved = append(unresolved, id)
			}
		}
		return nil, &CycleError{Unresolved: unresolved}
	}

	return order, nil
}
