package rules

import (
	"fmt"
	"log/slog"
	"sync"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/vk/varforge/internal/store"
)

// Engine evaluates named boolean conditions against the variable store.
// Expressions see the store snapshot as `vars` plus a `has(name)` helper,
// e.g. `vars["os.name"] == "windows" && has("install.path")`.
type Engine struct {
	store  *store.Store
	logger *slog.Logger

	mu       sync.RWMutex
	programs map[string]*exprvm.Program
}

// New creates an engine over the given store. A nil logger falls back to
// the default slog logger.
func New(st *store.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:    st,
		logger:   logger,
		programs: make(map[string]*exprvm.Program),
	}
}

// Define compiles expression and registers it under id, replacing any
// previous definition. Compilation failures surface here, at build time,
// not during refresh.
func (e *Engine) Define(id, expression string) error {
	program, err := exprlang.Compile(expression,
		exprlang.Env(environment(nil)),
		exprlang.AllowUndefinedVariables(),
		exprlang.AsBool(),
	)
	if err != nil {
		return fmt.Errorf("failed to compile condition %q: %w", id, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.programs[id] = program
	return nil
}

// IsTrue reports whether the condition registered under id currently holds.
// Unknown ids and evaluation failures are logged and count as false; the
// refresh loop relies on IsTrue never failing.
func (e *Engine) IsTrue(id string) bool {
	e.mu.RLock()
	program, ok := e.programs[id]
	e.mu.RUnlock()
	if !ok {
		e.logger.Warn("Unknown condition id, treating as false.", "condition", id)
		return false
	}

	snapshot := e.store.Snapshot()
	result, err := exprlang.Run(program, environment(snapshot))
	if err != nil {
		e.logger.Warn("Condition evaluation failed, treating as false.", "condition", id, "error", err)
		return false
	}
	value, ok := result.(bool)
	if !ok {
		e.logger.Warn("Condition did not evaluate to a boolean, treating as false.", "condition", id)
		return false
	}
	return value
}

// environment builds the expression environment for a store snapshot.
func environment(snapshot map[string]string) map[string]any {
	if snapshot == nil {
		snapshot = map[string]string{}
	}
	return map[string]any{
		"vars": snapshot,
		"has": func(name string) bool {
			_, ok := snapshot[name]
			return ok
		},
	}
}

// Static is a fixed condition table satisfying the engine's Rules contract,
// for tests and for callers that precompute their conditions.
type Static map[string]bool

// IsTrue reports the table entry for id; missing ids are false.
func (s Static) IsTrue(id string) bool {
	return s[id]
}
