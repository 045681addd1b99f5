/*
Package scope provides exclusive, scoped access to the op definition that is
currently being built.

A Scope owns a single "active definition" slot. Enter fills it and fails with
a *NestingError if it is already taken; Exit clears it and freezes the
definition. Define wraps the pair so the slot is released on every exit path.

Scopes travel through context.Context, the same way loggers do in ctxlog.
Helper functions such as TypeParam and Specialize act on whatever the scope in
their context is defining, so nested helpers never need an explicit handle:

	def, err := scope.Define(ctx, "matmul", func(ctx context.Context, _ *opdef.Definition) error {
		if err := scope.TypeParam(ctx, "T", "TACCUM"); err != nil {
			return err
		}
		return scope.Specialize(ctx, map[string]any{"T": irtype.F32, "TACCUM": irtype.F32})
	})

Each goroutine that defines ops should use its own Scope; two scopes never
interfere with each other.
*/
package scope
