package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of all loaded op
// declarations, in the order they were read.
type Model struct {
	Ops []*OpDecl
}

// OpDecl is the format-agnostic representation of one `op` declaration.
type OpDecl struct {
	Name            string
	Description     string
	TypeParams      []string
	Specializations []*SpecDecl
	File            string
}

// SpecDecl is one `specialize` entry: parameter names mapped to unevaluated
// type expressions.
type SpecDecl struct {
	Bindings map[string]hcl.Expression
}

// Merge appends the declarations of other after those of m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Ops = append(m.Ops, other.Ops...)
}
