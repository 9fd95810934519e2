package app

import (
	"context"
	"fmt"

	"github.com/vk/varforge/internal/ctxlog"
	"github.com/vk/varforge/internal/dag"
)

// Run resolves the loaded definition set and writes the resulting variables
// to the application's output writer as sorted name=value lines.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Building dependency graph over definitions...")
	graph := dag.Build(a.defs)
	if err := graph.DetectCycles(); err != nil {
		// Not fatal: the refresh loop has its own iteration bound and is
		// the authority on convergence.
		a.logger.Warn("Static dependency graph is cyclic; registration order kept within the cycle.", "detail", err.Error())
	}

	ordered := graph.Serialize()
	a.logger.Debug("Definitions ordered for registration.", "count", len(ordered))
	for _, def := range ordered {
		a.engine.Add(def)
	}

	if err := a.engine.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh dynamic variables: %w", err)
	}
	a.logger.Info("Dynamic variables resolved.", "count", a.engine.Store().Len())

	st := a.engine.Store()
	for _, name := range st.Names() {
		value, _ := st.Get(name)
		fmt.Fprintf(a.outW, "%s=%s\n", name, value)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
