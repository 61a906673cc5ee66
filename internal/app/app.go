package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/inmem"
	"github.com/vk/geoscript/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns a fully initialized App instance with its own
// isolated logger. Graph dumps go to outW, logs to errW.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		errW:   errW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		config: cfg,
	}
}

// Run loads the node-kind catalog, builds the showcase trees and dumps
// every resulting graph.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("loading node-kind catalog: %w", err)
	}
	a.logger.Info("Catalog loaded.", "kinds", len(cat.Kinds()))

	eng := inmem.NewEngine(cat)
	if err := buildShowcase(ctx, eng); err != nil {
		return fmt.Errorf("building showcase trees: %w", err)
	}

	for _, g := range eng.Graphs() {
		if _, err := a.outW.Write(g.Dump()); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run finished.")
	return nil
}

func (a *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if a.config.ManifestPath == "" {
		return catalog.Standard(ctx)
	}
	return catalog.LoadDir(ctx, a.config.ManifestPath)
}
