package builder

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/tcdsl/internal/config"
	"github.com/vk/tcdsl/internal/ctxlog"
	"github.com/vk/tcdsl/internal/irtype"
	"github.com/vk/tcdsl/internal/opdef"
	"github.com/vk/tcdsl/internal/scope"
)

// Build constructs one frozen definition per declaration in model.
func Build(ctx context.Context, model *config.Model) ([]*opdef.Definition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting op construction.", "ops", len(model.Ops))

	if scope.FromContext(ctx) == nil {
		ctx = scope.WithScope(ctx, scope.New())
	}

	defs := make([]*opdef.Definition, 0, len(model.Ops))
	for _, decl := range model.Ops {
		def, err := scope.Define(ctx, decl.Name, func(ctx context.Context, def *opdef.Definition) error {
			return populate(ctx, def, decl)
		})
		if err != nil {
			return nil, fmt.Errorf("op %q in %s: %w", decl.Name, decl.File, err)
		}
		defs = append(defs, def)
	}

	logger.Debug("Build: Op construction complete.", "ops", len(defs))
	return defs, nil
}

func populate(ctx context.Context, def *opdef.Definition, decl *config.OpDecl) error {
	if decl.Description != "" {
		if err := def.SetDescription(decl.Description); err != nil {
			return err
		}
	}

	if len(decl.TypeParams) > 0 {
		if err := scope.TypeParam(ctx, decl.TypeParams...); err != nil {
			return err
		}
	}

	for i, spec := range decl.Specializations {
		bindings, err := resolveBindings(spec)
		if err != nil {
			return fmt.Errorf("specialization %d: %w", i, err)
		}
		if err := scope.Specialize(ctx, bindings); err != nil {
			return fmt.Errorf("specialization %d: %w", i, err)
		}
	}
	return nil
}

// resolveBindings evaluates every binding expression, in name order so that
// the first reported error is deterministic.
func resolveBindings(spec *config.SpecDecl) (map[string]any, error) {
	names := make([]string, 0, len(spec.Bindings))
	for name := range spec.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	bindings := make(map[string]any, len(names))
	for _, name := range names {
		expr := spec.Bindings[name]
		ty, err := irtype.FromExpr(expr)
		if err != nil {
			return nil, fmt.Errorf("parameter %q at %s: %w", name, expr.Range(), err)
		}
		bindings[name] = ty
	}
	return bindings, nil
}
