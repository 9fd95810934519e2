package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/varforge/internal/config"
	"github.com/vk/varforge/internal/ctxlog"
	"github.com/vk/varforge/internal/props"
	"github.com/vk/varforge/internal/rules"
	"github.com/vk/varforge/internal/store"
	"github.com/vk/varforge/internal/vars"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	defs   []*vars.Definition
	engine *vars.Engine
}

// NewApp constructs the application: it builds an isolated logger, loads
// the definition files through the given loader, seeds the store, compiles
// all conditions, and wires the variable engine.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.DefinitionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	logger.Debug("Definitions loaded and translated into unified model.")

	seed := map[string]string{}
	if appConfig.PropertiesPath != "" {
		if seed, err = props.Load(appConfig.PropertiesPath); err != nil {
			return nil, err
		}
		logger.Debug("Seed properties loaded.", "count", len(seed))
	}

	st := store.NewFromProperties(seed)
	engine := vars.New(st)

	ruleEngine := rules.New(st, logger)
	for _, condition := range model.Conditions {
		if err := ruleEngine.Define(condition.ID, condition.Expression); err != nil {
			return nil, err
		}
	}
	engine.SetRules(ruleEngine)
	logger.Debug("Conditions compiled.", "count", len(model.Conditions))

	defs, err := buildDefinitions(model)
	if err != nil {
		return nil, err
	}
	logger.Debug("Definitions validated.", "count", len(defs))

	return &App{
		outW:   outW,
		logger: logger,
		defs:   defs,
		engine: engine,
	}, nil
}

// Engine exposes the variable engine, mainly for embedding callers and tests.
func (a *App) Engine() *vars.Engine {
	return a.engine
}
