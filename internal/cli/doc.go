// Package cli parses command-line arguments into an app.Config: the
// frame path, the logging options, and the topological sort strategy.
// Validation failures surface as ExitError values carrying the process
// exit code.
package cli
