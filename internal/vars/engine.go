package vars

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/varforge/internal/ctxlog"
	"github.com/vk/varforge/internal/store"
	"github.com/vk/varforge/internal/subst"
)

// Rules evaluates named boolean conditions gating dynamic variable
// definitions. The engine only consults it; implementations live elsewhere.
type Rules interface {
	IsTrue(conditionID string) bool
}

// Engine owns the variable store and the registered dynamic variable
// definitions, and drives the store to a fixed point on each Refresh.
//
// Add and Refresh are mutually exclusive: no two refreshes run concurrently
// and a definition cannot be registered mid-iteration. Reads through the
// store remain safe at any time via the store's own lock.
type Engine struct {
	mu      sync.Mutex
	store   *store.Store
	sub     *subst.Substitutor
	rules   Rules
	defs    []*Definition
	blocked *BlockRegistry
}

// New creates an engine over the given store. Rules must be attached with
// SetRules before the first Refresh.
func New(st *store.Store) *Engine {
	return &Engine{
		store:   st,
		sub:     subst.New(st),
		blocked: NewBlockRegistry(),
	}
}

// SetRules attaches the condition rules used during refresh.
func (e *Engine) SetRules(rules Rules) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = rules
}

// Store returns the engine's variable store.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Substitutor returns the substitutor bound to the engine's store.
func (e *Engine) Substitutor() *subst.Substitutor {
	return e.sub
}

// Add registers a dynamic variable definition. Definitions are evaluated in
// registration order on every refresh pass.
func (e *Engine) Add(def *Definition) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.defs = append(e.defs, def)
}

// Definitions returns the registered definitions in registration order.
func (e *Engine) Definitions() []*Definition {
	e.mu.Lock()
	defer e.mu.Unlock()
	defs := make([]*Definition, len(e.defs))
	copy(defs, e.defs)
	return defs
}

// Replace substitutes variable references in value. Substitution failures
// are logged and the value is returned unchanged; they never propagate.
func (e *Engine) Replace(ctx context.Context, value string) string {
	replaced, err := e.sub.Substitute(value)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Variable substitution failed, returning value unchanged.", "error", err)
		return value
	}
	return replaced
}

// RegisterBlockedNames suspends automatic evaluation and unsetting of the
// given names until the same blocker is unregistered for them.
func (e *Engine) RegisterBlockedNames(names []string, blocker any) {
	e.blocked.Register(names, blocker)
}

// UnregisterBlockedNames removes one occurrence of blocker from the given
// names' blocker stacks.
func (e *Engine) UnregisterBlockedNames(names []string, blocker any) {
	e.blocked.Unregister(names, blocker)
}

// IsBlocked reports whether name is currently blocked.
func (e *Engine) IsBlocked(name string) bool {
	return e.blocked.IsBlocked(name)
}

// Refresh re-evaluates all dynamic variable definitions until the store
// stops changing. It returns an error only for the two fatal classes: a
// structural evaluation fault (EvalError) or an exhausted iteration budget
// (ErrCyclic). Everything else is absorbed per-definition.
//
// On a fatal error the store keeps whatever state the completed iterations
// produced; there is no rollback.
func (e *Engine) Refresh(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	if e.rules == nil {
		return ErrNoRules
	}
	logger.Debug("Refreshing dynamic variables.", "definitions", len(e.defs))

	// pending collects definitions whose resolution was still incomplete
	// when a pass looked at them. They are force-locked after the loop so
	// a definition that can never resolve is not re-evaluated on every
	// future refresh.
	pending := make(map[*Definition]struct{})
	unsetNames := make(map[string]struct{})
	setNames := make(map[string]struct{})

	// Dependent definitions alone would converge within len(defs)+1 passes,
	// but conditions may read dynamic variables too, so the bound is a
	// generous multiple of the definition count.
	maxIterations := 10*len(e.defs) + 1

	for iteration := 0; ; iteration++ {
		if iteration >= maxIterations {
			return fmt.Errorf("%w: stopped after %d iterations (maybe a cyclic dependency of variables?)",
				ErrCyclic, maxIterations)
		}

		before := e.store.Snapshot()
		clear(unsetNames)
		clear(setNames)

		for _, def := range e.defs {
			name := def.Name
			if e.blocked.IsBlocked(name) {
				logger.Debug("Variable blocked from changing due to user input.", "name", name)
				continue
			}
			if def.ConditionID != "" && !e.rules.IsTrue(def.ConditionID) {
				if def.AutoUnset {
					unsetNames[name] = struct{}{}
				}
				continue
			}
			if def.CheckOnce && def.checked {
				// Re-assert the locked value so conditions that test for
				// presence keep seeing it during this pass.
				if previous, ok := e.store.Get(name); ok {
					e.store.Set(name, previous)
					setNames[name] = struct{}{}
				}
				continue
			}

			value, ok, err := def.Value.Resolve(e.sub)
			if err != nil {
				return &EvalError{Name: name, Err: err}
			}
			if ok {
				e.store.Set(name, value)
				setNames[name] = struct{}{}
				logger.Debug("Dynamic variable set.", "name", name, "value", value)
			} else if def.AutoUnset {
				unsetNames[name] = struct{}{}
			}
			if ok && !subst.IsUnresolved(value) {
				def.checked = true
			} else {
				pending[def] = struct{}{}
			}
		}

		changed := false

		// A set from one definition wins over an unset requested by another
		// definition of the same name during the same pass.
		for name := range unsetNames {
			if _, wasSet := setNames[name]; wasSet {
				continue
			}
			if _, ok := e.store.Get(name); ok {
				e.store.Unset(name)
				changed = true
				logger.Debug("Dynamic variable unset.", "name", name)
			}
		}

		for name := range setNames {
			current, _ := e.store.Get(name)
			previous, had := before[name]
			if !had || previous != current {
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	// Force-lock definitions that never fully resolved. This freezes a
	// check-once definition at a partially-resolved value permanently; see
	// the tests pinning this behavior before changing it.
	for def := range pending {
		def.checked = true
	}
	return nil
}
