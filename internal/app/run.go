package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/tcdsl/internal/builder"
	"github.com/vk/tcdsl/internal/config"
	"github.com/vk/tcdsl/internal/ctxlog"
	"github.com/vk/tcdsl/internal/opref"
	"github.com/vk/tcdsl/internal/scope"
)

// Run loads, builds and validates all definitions, then prints the selected
// ones to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = scope.WithScope(ctx, scope.New())
	a.logger.Debug("App.Run method started.")

	if _, err := os.Stat(a.config.DefsPath); err != nil {
		return fmt.Errorf("definitions path %s: %w", a.config.DefsPath, err)
	}

	model, err := a.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}

	defs, err := builder.Build(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to build definitions: %w", err)
	}

	for _, def := range defs {
		if err := a.registry.Register(def); err != nil {
			return fmt.Errorf("failed to register definitions: %w", err)
		}
	}
	a.logger.Info("Op definitions registered.", "count", a.registry.Len(), "names", a.registry.Names())

	if err := a.registry.Validate(ctx, a.config.Strict); err != nil {
		return err
	}

	if a.config.OpRef != "" {
		ref, err := opref.Parse(a.config.OpRef)
		if err != nil {
			return err
		}
		return a.renderRef(ref)
	}

	if a.registry.Len() == 0 {
		a.logger.Warn("No op definitions found.", "path", a.config.DefsPath)
		return nil
	}
	return a.renderAll()
}

// load runs every loader over the configured path and merges the results.
func (a *App) load(ctx context.Context) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}
	for _, loader := range a.loaders {
		m, err := loader.Load(ctx, a.config.DefsPath)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	logger.Debug("Definitions loaded into unified model.", "ops", len(model.Ops))
	return model, nil
}
