package registry

import (
	"errors"
	"fmt"

	"github.com/vk/tcdsl/internal/opdef"
	"github.com/vk/tcdsl/internal/opref"
)

var (
	ErrDuplicateOp          = errors.New("op already registered")
	ErrUnknownOp            = errors.New("unknown op")
	ErrNoSuchSpecialization = errors.New("no such specialization")
)

// Registry holds finished definitions in registration order.
type Registry struct {
	defs  map[string]*opdef.Definition
	order []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*opdef.Definition)}
}

// Register adds a definition. Op names must be unique.
func (r *Registry) Register(def *opdef.Definition) error {
	if _, exists := r.defs[def.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateOp, def.Name())
	}
	r.defs[def.Name()] = def
	r.order = append(r.order, def.Name())
	return nil
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (*opdef.Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered op names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Definitions returns the registered definitions in registration order.
func (r *Registry) Definitions() []*opdef.Definition {
	out := make([]*opdef.Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup resolves ref. When ref has an index, the selected specialization is
// returned as well.
func (r *Registry) Lookup(ref opref.Ref) (*opdef.Definition, *opdef.Specialization, error) {
	def, ok := r.defs[ref.Op]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOp, ref.Op)
	}
	if !ref.HasIndex() {
		return def, nil, nil
	}

	specs := def.Specializations()
	if ref.Index < 0 || ref.Index >= len(specs) {
		return nil, nil, fmt.Errorf("%w: %s (op has %d)", ErrNoSuchSpecialization, ref, len(specs))
	}
	return def, &specs[ref.Index], nil
}
