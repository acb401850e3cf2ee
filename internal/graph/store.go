package graph

import "fmt"

// IndexError reports a node id outside the range of a store.
type IndexError struct {
	ID  int
	Len int
}

// Error implements the error interface for IndexError.
func (e *IndexError) Error() string {
	return fmt.Sprintf("node id %d out of range [0, %d)", e.ID, e.Len)
}

// Store is an append-only collection of node payloads. A node's id is its
// insertion index: the first AddNode returns 0, the next 1, and so on.
// Ids are dense, never reused, and stable for the store's lifetime; there
// is no removal.
//
// The zero value is ready to use.
type Store[T any] struct {
	payloads []T
}

// AddNode appends payload and returns the id assigned to it.
func (s *Store[T]) AddNode(payload T) int {
	s.payloads = append(s.payloads, payload)
	return len(s.payloads) - 1
}

// Node returns the payload stored under id, or an *IndexError when id
// does not name a stored node.
func (s *Store[T]) Node(id int) (T, error) {
	if id < 0 || id >= len(s.payloads) {
		var zero T
		return zero, &IndexError{ID: id, Len: len(s.payloads)}
	}
	return s.payloads[id], nil
}

// Len returns the number of stored nodes.
func (s *Store[T]) Len() int {
	return len(s.payloads)
}

// contains reports whether id names a stored node.
func (s *Store[T]) contains(id int) bool {
	return id >= 0 && id < len(s.payloads)
}
