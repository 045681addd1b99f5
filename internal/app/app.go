package app

import (
	"io"
	"log/slog"

	"github.com/vk/tcdsl/internal/config"
	"github.com/vk/tcdsl/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loaders  []config.Loader
	registry *registry.Registry
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. When no loaders are given, all built-in formats are used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loaders:  loaders,
		registry: registry.New(),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
