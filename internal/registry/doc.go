// Package registry provides the central "glue" between frame definitions
// and compiled Go code.
//
// The Registry stores the mapping between the runner kinds referenced by
// `pass` blocks (e.g., "work") and the Go handlers that implement them.
// During application startup the registry is populated by the built-in
// modules and then validated against the loaded frame, so a pass naming
// an unknown runner fails before execution starts rather than mid-frame.
package registry
