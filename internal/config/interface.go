package config

import "context"

// Loader is the interface for a format-specific frame loader.
type Loader interface {
	// Load reads frame definitions from the given paths (single files or
	// directories to scan), translates them into the format-agnostic
	// model, and merges them into one Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
