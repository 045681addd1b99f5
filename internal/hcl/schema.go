package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a definition file.
type fileRoot struct {
	Ops    []*opBlock `hcl:"op,block"`
	Remain hcl.Body   `hcl:",remain"`
}

// opBlock represents an `op` block.
type opBlock struct {
	Name            string             `hcl:"name,label"`
	Description     string             `hcl:"description,optional"`
	TypeParams      []string           `hcl:"type_params,optional"`
	Specializations []*specializeBlock `hcl:"specialize,block"`
}

// specializeBlock represents a `specialize` block. Its attributes are the
// bindings, so the whole body is kept.
type specializeBlock struct {
	Body hcl.Body `hcl:",remain"`
}
