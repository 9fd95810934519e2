package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Store is a thread-safe mapping of variable names to string values.
// A name is either present with a value or absent; there is no nil value.
type Store struct {
	// mu protects values. Individual reads and writes are atomic; callers
	// that need a consistent multi-name view use Snapshot.
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// NewFromProperties creates a store seeded with the given properties.
// The input map is copied; later mutation of it does not affect the store.
func NewFromProperties(props map[string]string) *Store {
	s := New()
	for name, value := range props {
		s.values[name] = value
	}
	return s
}

// Set stores a value under name, overwriting any previous value.
func (s *Store) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// Unset removes name from the store. Removing an absent name is a no-op.
func (s *Store) Unset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
}

// Get returns the value stored under name and whether it is present.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[name]
	return value, ok
}

// GetDefault returns the value stored under name, or def if absent.
func (s *Store) GetDefault(name, def string) string {
	if value, ok := s.Get(name); ok {
		return value
	}
	return def
}

// GetBool returns the boolean value of name, or false if the variable is
// absent or not a boolean literal.
func (s *Store) GetBool(name string) bool {
	return s.GetBoolDefault(name, false)
}

// GetBoolDefault returns the boolean value of name. Only the literals
// "true" and "false" (case-insensitive) parse; anything else, including
// an absent variable, yields def.
func (s *Store) GetBoolDefault(name string, def bool) bool {
	value, ok := s.Get(name)
	if !ok {
		return def
	}
	switch {
	case strings.EqualFold(value, "true"):
		return true
	case strings.EqualFold(value, "false"):
		return false
	}
	return def
}

// GetInt returns the integer value of name, or -1 if the variable is
// absent or not an integer.
func (s *Store) GetInt(name string) int {
	return s.GetIntDefault(name, -1)
}

// GetIntDefault returns the integer value of name, or def if the variable
// is absent or does not parse. Parse failures never propagate.
func (s *Store) GetIntDefault(name string, def int) int {
	value, ok := s.Get(name)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// GetLong returns the 64-bit integer value of name, or -1 if the variable
// is absent or not an integer.
func (s *Store) GetLong(name string) int64 {
	return s.GetLongDefault(name, -1)
}

// GetLongDefault returns the 64-bit integer value of name, or def if the
// variable is absent or does not parse.
func (s *Store) GetLongDefault(name string, def int64) int64 {
	value, ok := s.Get(name)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

// Snapshot returns a copy of the current name→value mapping. The copy is
// taken atomically and is used for convergence comparison between passes.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]string, len(s.values))
	for name, value := range s.values {
		snapshot[name] = value
	}
	return snapshot
}

// Names returns all variable names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variables currently set.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
