package scope

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tcdsl/internal/irtype"
	"github.com/vk/tcdsl/internal/opdef"
)

func TestScope_NestingIsRejected(t *testing.T) {
	s := New()

	a, err := s.Enter("a")
	require.NoError(t, err)
	require.Equal(t, "a", a.Name())

	_, err = s.Enter("b")
	var nestErr *NestingError
	require.ErrorAs(t, err, &nestErr)
	assert.ErrorIs(t, err, ErrNesting)
	assert.Equal(t, "a", nestErr.Active)
	assert.Equal(t, "b", nestErr.Requested)

	s.Exit()

	b, err := s.Enter("b")
	require.NoError(t, err)
	assert.Equal(t, "b", b.Name())
	s.Exit()
}

func TestScope_RepeatedEnterExitPairs(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		_, err := s.Enter("op")
		require.NoError(t, err)
		_, err = s.Enter("op")
		require.ErrorIs(t, err, ErrNesting)
		s.Exit()
	}
}

func TestScope_CurrentReturnsActiveDefinition(t *testing.T) {
	s := New()

	_, err := s.Current()
	require.ErrorIs(t, err, ErrNoActiveDefinition)

	def, err := s.Enter("matmul")
	require.NoError(t, err)

	cur, err := s.Current()
	require.NoError(t, err)
	require.Same(t, def, cur)

	s.Exit()
	_, err = s.Current()
	assert.ErrorIs(t, err, ErrNoActiveDefinition)
	assert.True(t, def.Frozen(), "exit must freeze the definition")
}

func TestScope_ExitWithoutEnterIsNoop(t *testing.T) {
	s := New()
	s.Exit()
	_, err := s.Enter("x")
	assert.NoError(t, err)
}

func TestHelpers_RequireActiveDefinition(t *testing.T) {
	ctx := context.Background()

	assert.ErrorIs(t, TypeParam(ctx, "T"), ErrNoActiveDefinition)
	assert.ErrorIs(t, Specialize(ctx, map[string]any{"T": irtype.F32}), ErrNoActiveDefinition)
	_, err := Current(ctx)
	assert.ErrorIs(t, err, ErrNoActiveDefinition)

	ctx = WithScope(ctx, New())
	assert.ErrorIs(t, TypeParam(ctx, "T"), ErrNoActiveDefinition)
}

func TestDefine_Matmul(t *testing.T) {
	ctx := WithScope(context.Background(), New())

	def, err := Define(ctx, "matmul", func(ctx context.Context, _ *opdef.Definition) error {
		if err := Specialize(ctx, map[string]any{"T": irtype.F32, "TACCUM": irtype.F32}); err != nil {
			return err
		}
		return Specialize(ctx, map[string]any{"T": irtype.I8, "TACCUM": irtype.I32})
	})
	require.NoError(t, err)

	assert.True(t, def.HasTypeParam("T"))
	assert.True(t, def.HasTypeParam("TACCUM"))
	assert.Equal(t, "OpDef<matmul>:\n  {T: f32, TACCUM: f32}\n  {T: i8, TACCUM: i32}", def.String())
	assert.True(t, def.Frozen())
}

func TestDefine_DuplicateTypeParam(t *testing.T) {
	ctx := WithScope(context.Background(), New())

	_, err := Define(ctx, "matmul", func(ctx context.Context, _ *opdef.Definition) error {
		if err := TypeParam(ctx, "I", "J"); err != nil {
			return err
		}
		return TypeParam(ctx, "I")
	})

	var dup *opdef.DuplicateParameterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "I", dup.Param.Name)
}

func TestDefine_NestedDefineFails(t *testing.T) {
	ctx := WithScope(context.Background(), New())

	_, err := Define(ctx, "outer", func(ctx context.Context, _ *opdef.Definition) error {
		_, err := Define(ctx, "inner", func(context.Context, *opdef.Definition) error { return nil })
		return err
	})
	require.ErrorIs(t, err, ErrNesting)

	// The outer scope was released despite the failure.
	_, err = Define(ctx, "next", func(context.Context, *opdef.Definition) error { return nil })
	assert.NoError(t, err)
}

func TestDefine_ReleasesOnError(t *testing.T) {
	s := New()
	ctx := WithScope(context.Background(), s)
	boom := errors.New("boom")

	def, err := Define(ctx, "a", func(context.Context, *opdef.Definition) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Nil(t, def)

	_, err = s.Current()
	assert.ErrorIs(t, err, ErrNoActiveDefinition)
}

func TestDefine_ReleasesOnPanic(t *testing.T) {
	s := New()
	ctx := WithScope(context.Background(), s)

	require.Panics(t, func() {
		_, _ = Define(ctx, "a", func(context.Context, *opdef.Definition) error { panic("boom") })
	})

	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNoActiveDefinition)
}

func TestDefine_AttachesScopeWhenMissing(t *testing.T) {
	def, err := Define(context.Background(), "relu", func(ctx context.Context, d *opdef.Definition) error {
		cur, err := Current(ctx)
		if err != nil {
			return err
		}
		assert.Same(t, d, cur)
		return TypeParam(ctx, "T")
	})
	require.NoError(t, err)
	assert.True(t, def.HasTypeParam("T"))
}

func TestDefine_LogsToDefaultLoggerWithBareContext(t *testing.T) {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	_, err := Define(context.Background(), "softmax", func(context.Context, *opdef.Definition) error { return nil })
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "Entered op definition.")
	assert.Contains(t, logs.String(), "op=softmax")
}

func TestScope_IsolatedPerGoroutine(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := WithScope(context.Background(), New())
			_, err := Define(ctx, "op", func(ctx context.Context, _ *opdef.Definition) error {
				return Specialize(ctx, map[string]any{"T": irtype.F32})
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
