package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of a frame: the
// passes to schedule and the resources they read and write. Pass order in
// the slice is declaration order, which the scheduler treats as the
// chronological order of the declared accesses.
type Model struct {
	Passes    []*Pass
	Resources []*Resource
}

// Pass is the format-agnostic representation of a `pass` block.
type Pass struct {
	// Runner names the registered Go handler kind that executes the pass.
	Runner string
	// Name uniquely identifies the pass within its frame.
	Name string
	// Reads and Writes reference resources by name. Within a pass the
	// reads are recorded before the writes, each in declaration order.
	Reads  []string
	Writes []string
	// DependsOn names passes that must run before this one, independent
	// of any resource hazards.
	DependsOn []string
	// Params carries the pass's arguments, already evaluated to values.
	Params map[string]cty.Value
}

// Resource is the format-agnostic representation of a `resource` block.
type Resource struct {
	Kind   string
	Name   string
	Params map[string]cty.Value
}
