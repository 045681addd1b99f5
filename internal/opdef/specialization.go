package opdef

import (
	"sort"
	"strings"

	"github.com/vk/tcdsl/internal/irtype"
	"github.com/zclconf/go-cty/cty"
)

// Binding assigns one concrete type to one type parameter.
type Binding struct {
	Param TypeParameter
	Type  cty.Type
}

// Specialization is one concrete assignment of types to some or all of a
// definition's parameters. Bindings are kept sorted by parameter name.
type Specialization struct {
	bindings []Binding
}

// Bindings returns a copy of the bindings, ordered by parameter name.
func (s Specialization) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// Names returns the bound parameter names in order.
func (s Specialization) Names() []string {
	names := make([]string, len(s.bindings))
	for i, b := range s.bindings {
		names[i] = b.Param.Name
	}
	return names
}

// Lookup returns the type bound to the named parameter.
func (s Specialization) Lookup(name string) (cty.Type, bool) {
	for _, b := range s.bindings {
		if b.Param.Name == name {
			return b.Type, true
		}
	}
	return cty.NilType, false
}

// Len returns the number of bindings.
func (s Specialization) Len() int {
	return len(s.bindings)
}

// String renders the bindings as `{T: f32, TACCUM: f32}`.
func (s Specialization) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s.bindings {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.Param.Name)
		sb.WriteString(": ")
		sb.WriteString(irtype.Display(b.Type))
	}
	sb.WriteByte('}')
	return sb.String()
}

// SpecializationLog is the ordered list of specializations of one definition.
// Every binding is checked against the parameter registry it was created with.
// It is not synchronized; Definition guards access to it.
type SpecializationLog struct {
	params  *ParameterRegistry
	entries []Specialization
}

// NewSpecializationLog returns an empty log validated against params.
func NewSpecializationLog(params *ParameterRegistry) *SpecializationLog {
	return &SpecializationLog{params: params}
}

// Add records one specialization. Names are visited in lexical order; each
// is declared in the registry if absent, then its value must be a concrete IR
// type. The first invalid value aborts the call with a *TypeBindingError and
// nothing is appended, but parameters declared up to that point stay declared.
// Identical specializations are not de-duplicated.
func (l *SpecializationLog) Add(bindings map[string]any) error {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	spec := Specialization{bindings: make([]Binding, 0, len(names))}
	for _, name := range names {
		param := l.params.DeclareIfAbsent(name)
		value := bindings[name]
		ty, ok := irtype.Recognize(value)
		if !ok {
			return &TypeBindingError{Name: name, Value: value}
		}
		spec.bindings = append(spec.bindings, Binding{Param: param, Type: ty})
	}

	l.entries = append(l.entries, spec)
	return nil
}

// All returns the specializations in the order they were added. The returned
// slice is a copy and can be iterated any number of times.
func (l *SpecializationLog) All() []Specialization {
	out := make([]Specialization, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded specializations.
func (l *SpecializationLog) Len() int {
	return len(l.entries)
}
