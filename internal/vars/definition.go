package vars

// Definition is a single dynamic variable definition. A name is not unique
// across the definition set: several definitions may produce the same name,
// typically guarded by different conditions, and the last one to write
// during a refresh pass wins for that pass.
type Definition struct {
	// Name is the variable this definition produces.
	Name string

	// ConditionID references a condition in the attached Rules. Empty means
	// the definition is always active.
	ConditionID string

	// CheckOnce freezes the definition once its value fully resolves; it is
	// never recomputed for the lifetime of the engine afterwards.
	CheckOnce bool

	// AutoUnset removes the name from the store when the definition's
	// condition is false or it cannot currently produce a resolved value.
	AutoUnset bool

	// Value is the evaluation capability of this definition.
	Value Value

	// checked is set by the engine once the definition has locked a value.
	checked bool
}

// NewDefinition creates a definition producing name from value.
func NewDefinition(name string, value Value) *Definition {
	return &Definition{Name: name, Value: value}
}

// Checked reports whether the engine has locked this definition's value.
func (d *Definition) Checked() bool {
	return d.checked
}

// UnresolvedNames returns the set of other variable names this definition's
// raw expression references. Used only for dependency graph construction.
func (d *Definition) UnresolvedNames() []string {
	return d.Value.References()
}
