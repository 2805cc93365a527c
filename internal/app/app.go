package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/optsift/internal/ctxlog"
	"github.com/vk/optsift/internal/parser"
	"github.com/vk/optsift/internal/registry"
	"github.com/vk/optsift/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	parser   *parser.Parser
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader schema.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	commands, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load command manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into command schemas.", "count", len(commands))

	reg := registry.New()
	reg.PopulateFromCommands(commands)
	logger.Debug("Registry populated from loaded commands.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		parser:   parser.New(nil),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
