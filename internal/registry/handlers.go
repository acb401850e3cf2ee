package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// Handler holds the compiled Go parts of a runner kind.
type Handler struct {
	// NewInput returns a zeroed params struct for the handler. The
	// executor decodes the pass's params into it before calling Fn. A
	// nil NewInput means the runner takes no params; Fn then receives a
	// nil input.
	NewInput func() any
	// Fn executes one pass.
	Fn func(ctx context.Context, input any) error
}

// RegisterRunner registers the Go handler implementing a runner kind.
func (r *Registry) RegisterRunner(kind string, handler *Handler) {
	if _, exists := r.handlers[kind]; exists {
		panic(fmt.Sprintf("runner handler with kind '%s' already registered", kind))
	}
	slog.Debug("Registering runner handler.", "kind", kind)
	r.handlers[kind] = handler
}

// Runner returns the handler registered for kind.
func (r *Registry) Runner(kind string) (*Handler, bool) {
	handler, ok := r.handlers[kind]
	return handler, ok
}

// Kinds returns all registered runner kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.handlers))
	for kind := range r.handlers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
