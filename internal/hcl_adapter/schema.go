package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a frame file.
type fileRoot struct {
	Passes    []*passBlock     `hcl:"pass,block"`
	Resources []*resourceBlock `hcl:"resource,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

// paramsBlock captures the raw body of a `params` block so its
// attributes can be extracted without a fixed schema.
type paramsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// passBlock represents a `pass` block from a user's frame file. The two
// labels name the runner kind and the pass instance.
type passBlock struct {
	Runner    string       `hcl:"runner,label"`
	Name      string       `hcl:"name,label"`
	Reads     []string     `hcl:"reads,optional"`
	Writes    []string     `hcl:"writes,optional"`
	DependsOn []string     `hcl:"depends_on,optional"`
	Params    *paramsBlock `hcl:"params,block"`
}

// resourceBlock represents a `resource` block from a user's frame file.
type resourceBlock struct {
	Kind   string       `hcl:"kind,label"`
	Name   string       `hcl:"name,label"`
	Params *paramsBlock `hcl:"params,block"`
}
