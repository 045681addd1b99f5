package opdef

import (
	"fmt"
	"strings"
	"sync"
)

// Definition aggregates the name, type parameters and specializations of one op.
type Definition struct {
	mu          sync.RWMutex
	name        string
	description string
	params      *ParameterRegistry
	specs       *SpecializationLog
	frozen      bool
}

// New returns an empty, mutable definition.
func New(name string) *Definition {
	params := NewParameterRegistry()
	return &Definition{
		name:   name,
		params: params,
		specs:  NewSpecializationLog(params),
	}
}

// Name returns the identifying name of the op.
func (d *Definition) Name() string {
	return d.name
}

// Description returns the free-form description, if any.
func (d *Definition) Description() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.description
}

// SetDescription sets the free-form description.
func (d *Definition) SetDescription(desc string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frozen {
		return frozenError(d.name)
	}
	d.description = desc
	return nil
}

// DeclareTypeParams explicitly declares one or more type parameters.
// See ParameterRegistry.Declare.
func (d *Definition) DeclareTypeParams(names ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frozen {
		return frozenError(d.name)
	}
	return d.params.Declare(names...)
}

// DeclareTypeParamIfAbsent returns the named parameter, declaring it if needed.
func (d *Definition) DeclareTypeParamIfAbsent(name string) (TypeParameter, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frozen {
		return TypeParameter{}, frozenError(d.name)
	}
	return d.params.DeclareIfAbsent(name), nil
}

// HasTypeParam reports whether the named parameter is declared.
func (d *Definition) HasTypeParam(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.params.Contains(name)
}

// TypeParams returns the declared parameters ordered by name.
func (d *Definition) TypeParams() []TypeParameter {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.params.Params()
}

// Specialize records a specialization. See SpecializationLog.Add.
func (d *Definition) Specialize(bindings map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frozen {
		return frozenError(d.name)
	}
	return d.specs.Add(bindings)
}

// Specializations returns the recorded specializations in declaration order.
func (d *Definition) Specializations() []Specialization {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.specs.All()
}

// Freeze makes the definition read-only. Freezing twice is a no-op.
func (d *Definition) Freeze() {
	d.mu.Lock()
	d.frozen = true
	d.mu.Unlock()
}

// Frozen reports whether the definition has been frozen.
func (d *Definition) Frozen() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.frozen
}

// String renders the definition name followed by one line per specialization:
//
//	OpDef<matmul>:
//	  {T: f32, TACCUM: f32}
//	  {T: i8, TACCUM: i32}
func (d *Definition) String() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "OpDef<%s>:", d.name)
	for _, s := range d.specs.entries {
		sb.WriteString("\n  ")
		sb.WriteString(s.String())
	}
	return sb.String()
}
