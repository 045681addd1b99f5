package opdef

import (
	"fmt"
	"sort"
)

// TypeParameter is a named placeholder for a concrete type. Two parameters
// are equal iff their names are equal.
type TypeParameter struct {
	Name string
}

func (p TypeParameter) String() string {
	return fmt.Sprintf("TypeParam(%q)", p.Name)
}

// ParameterRegistry owns the set of type parameters of one definition.
// It is not synchronized; Definition guards access to it.
type ParameterRegistry struct {
	params map[string]TypeParameter
}

// NewParameterRegistry returns an empty registry.
func NewParameterRegistry() *ParameterRegistry {
	return &ParameterRegistry{params: make(map[string]TypeParameter)}
}

// Declare adds one parameter per name. The call is all-or-nothing: if any
// name is already present, or repeats earlier in the same call, nothing is
// inserted and a *DuplicateParameterError naming the first offender is returned.
// Calling it without names fails with ErrNoParameterNames.
func (r *ParameterRegistry) Declare(names ...string) error {
	if len(names) == 0 {
		return ErrNoParameterNames
	}
	pending := make(map[string]struct{}, len(names))
	for _, name := range names {
		_, exists := r.params[name]
		_, repeated := pending[name]
		if exists || repeated {
			return &DuplicateParameterError{Param: TypeParameter{Name: name}}
		}
		pending[name] = struct{}{}
	}
	for _, name := range names {
		r.params[name] = TypeParameter{Name: name}
	}
	return nil
}

// DeclareIfAbsent returns the parameter with the given name, inserting it first
// if needed.
func (r *ParameterRegistry) DeclareIfAbsent(name string) TypeParameter {
	if p, ok := r.params[name]; ok {
		return p
	}
	p := TypeParameter{Name: name}
	r.params[name] = p
	return p
}

// Contains reports whether a parameter with the given name is declared.
func (r *ParameterRegistry) Contains(name string) bool {
	_, ok := r.params[name]
	return ok
}

// Len returns the number of declared parameters.
func (r *ParameterRegistry) Len() int {
	return len(r.params)
}

// Params returns the declared parameters ordered by name.
func (r *ParameterRegistry) Params() []TypeParameter {
	out := make([]TypeParameter, 0, len(r.params))
	for _, p := range r.params {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
