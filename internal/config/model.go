package config

import "context"

// Model is the unified, format-agnostic representation of a variable
// definition set: the dynamic variables, the conditions gating them, and
// nothing else. Definition order is preserved from the source files.
type Model struct {
	Variables  []*Variable
	Conditions []*Condition
}

// Variable is the format-agnostic representation of a `variable` block.
// Exactly one of Value and Environment is set; the loader enforces that.
type Variable struct {
	Name string

	// Value is the raw inline expression, possibly containing ${name}
	// references. Nil when the variable reads from the environment.
	Value *string

	// Environment is the process environment variable to read. Nil when
	// the variable has an inline value.
	Environment *string

	// ConditionID gates the definition; empty means always active.
	ConditionID string

	CheckOnce bool
	AutoUnset bool
}

// Condition is the format-agnostic representation of a `condition` block.
type Condition struct {
	ID         string
	Expression string
}

// Loader is the interface for a format-specific definition loader.
type Loader interface {
	// Load reads definition files from the given paths (files or
	// directories) and translates them into the model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
