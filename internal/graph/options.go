package graph

import "github.com/vk/framegraphgo/internal/toposort"

// Option adjusts how a graph is constructed.
type Option func(*settings)

type settings struct {
	strategy toposort.Strategy
}

func newSettings(opts []Option) settings {
	s := settings{strategy: toposort.Kahn{}}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithStrategy selects the topological-sort strategy used by
// BuildExecutionOrder. The default is toposort.Kahn.
func WithStrategy(strategy toposort.Strategy) Option {
	return func(s *settings) { s.strategy = strategy }
}
