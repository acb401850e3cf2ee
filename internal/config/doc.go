// Package config defines the format-agnostic frame model for the
// application, along with the Loader interface for reading it from
// various sources.
//
// The `config.Model` is the single source of truth for the `schedule`
// and `executor` packages. Concrete Loader implementations, such as for
// HCL or YAML, are provided in separate packages.
package config
