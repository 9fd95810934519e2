package vars

import "sync"

// BlockRegistry tracks, per variable name, a stack of opaque blocker values.
// A name is blocked while its stack is non-empty; the refresh loop will not
// evaluate or unset a blocked name. Blocking has no effect on the store
// itself, so manually-set values survive untouched.
type BlockRegistry struct {
	mu     sync.RWMutex
	stacks map[string][]any
}

// NewBlockRegistry creates an empty registry.
func NewBlockRegistry() *BlockRegistry {
	return &BlockRegistry{stacks: make(map[string][]any)}
}

// Register pushes blocker onto the stack of every given name. Pushing the
// same blocker twice is legal and must be matched by as many removals.
func (r *BlockRegistry) Register(names []string, blocker any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		r.stacks[name] = append(r.stacks[name], blocker)
	}
}

// Unregister removes one occurrence of blocker from the stack of every
// given name. Removing a blocker that was never registered is a no-op.
func (r *BlockRegistry) Unregister(names []string, blocker any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		stack := r.stacks[name]
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i] == blocker {
				r.stacks[name] = append(stack[:i], stack[i+1:]...)
				break
			}
		}
		if len(r.stacks[name]) == 0 {
			delete(r.stacks, name)
		}
	}
}

// IsBlocked reports whether name currently has at least one blocker.
func (r *BlockRegistry) IsBlocked(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stacks[name]) > 0
}
