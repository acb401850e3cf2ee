package registry

// Module is the interface that all core modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the runner handlers for a single application instance.
type Registry struct {
	handlers map[string]*Handler
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]*Handler),
	}
}
