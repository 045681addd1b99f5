package scope

import (
	"context"
	"sync"

	"github.com/vk/tcdsl/internal/ctxlog"
	"github.com/vk/tcdsl/internal/opdef"
)

// Scope holds at most one active definition.
type Scope struct {
	mu     sync.Mutex
	active *opdef.Definition
}

// New returns a scope with no active definition.
func New() *Scope {
	return &Scope{}
}

// Enter creates a definition named name and makes it the active one.
func (s *Scope) Enter(name string) (*opdef.Definition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, &NestingError{Active: s.active.Name(), Requested: name}
	}
	s.active = opdef.New(name)
	return s.active, nil
}

// Exit freezes and releases the active definition. It is a no-op when
// nothing is active.
func (s *Scope) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.active.Freeze()
		s.active = nil
	}
}

// Current returns the active definition itself, not a copy.
func (s *Scope) Current() (*opdef.Definition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrNoActiveDefinition
	}
	return s.active, nil
}

type key struct{}

var scopeKey = key{}

// WithScope returns a new context carrying s.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// FromContext returns the scope carried by ctx, or nil.
func FromContext(ctx context.Context) *Scope {
	s, _ := ctx.Value(scopeKey).(*Scope)
	return s
}

// Define enters a definition named name on the scope in ctx, runs fn, and
// always exits, even if fn fails or panics. A fresh scope is attached when ctx
// carries none. The finished, frozen definition is returned only when fn
// succeeds.
func Define(ctx context.Context, name string, fn func(ctx context.Context, def *opdef.Definition) error) (*opdef.Definition, error) {
	logger := ctxlog.FromContext(ctx)

	s := FromContext(ctx)
	if s == nil {
		s = New()
		ctx = WithScope(ctx, s)
	}

	def, err := s.Enter(name)
	if err != nil {
		return nil, err
	}
	defer s.Exit()
	logger.Debug("Entered op definition.", "op", name)

	if err := fn(ctx, def); err != nil {
		logger.Debug("Op definition failed.", "op", name, "error", err)
		return nil, err
	}

	logger.Debug("Op definition complete.", "op", name, "specializations", len(def.Specializations()))
	return def, nil
}

// Current returns the definition active on the scope in ctx.
func Current(ctx context.Context) (*opdef.Definition, error) {
	s := FromContext(ctx)
	if s == nil {
		return nil, ErrNoActiveDefinition
	}
	return s.Current()
}

// TypeParam declares one or more type parameters on the active definition.
func TypeParam(ctx context.Context, names ...string) error {
	def, err := Current(ctx)
	if err != nil {
		return err
	}
	return def.DeclareTypeParams(names...)
}

// Specialize records a specialization on the active definition.
func Specialize(ctx context.Context, bindings map[string]any) error {
	def, err := Current(ctx)
	if err != nil {
		return err
	}
	return def.Specialize(bindings)
}
