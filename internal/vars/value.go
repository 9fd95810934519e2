package vars

import (
	"errors"
	"os"

	"github.com/vk/varforge/internal/subst"
)

// Value produces the raw value of a dynamic variable definition. Variants
// are flat value kinds sharing this one contract; there is no hierarchy.
type Value interface {
	// Resolve produces the current value. ok is false when the value cannot
	// currently be produced, which is recoverable and handled by the
	// engine's auto-unset policy. A non-nil error is a structural fault and
	// aborts the refresh that encountered it.
	Resolve(s *subst.Substitutor) (value string, ok bool, err error)

	// Validate checks the static configuration of the value.
	Validate() error

	// References returns the variable names the raw expression textually
	// mentions. Used only for build-time dependency ordering.
	References() []string
}

// PlainValue is an inline expression, possibly containing ${name} references
// to other variables.
type PlainValue struct {
	Raw string
}

// Resolve substitutes the currently-set variables into the raw expression.
// References to absent variables stay in the result; the engine decides
// whether that counts as resolved.
func (v *PlainValue) Resolve(s *subst.Substitutor) (string, bool, error) {
	value, err := s.Substitute(v.Raw)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Validate rejects raw expressions with broken reference syntax.
func (v *PlainValue) Validate() error {
	return subst.CheckSyntax(v.Raw)
}

// References returns the names the raw expression mentions.
func (v *PlainValue) References() []string {
	return subst.ReferencedNames(v.Raw)
}

// EnvironmentValue reads a process environment variable. An unset
// environment variable yields no value rather than an error.
type EnvironmentValue struct {
	Name string
}

// Resolve looks the environment variable up at evaluation time.
func (v *EnvironmentValue) Resolve(*subst.Substitutor) (string, bool, error) {
	value, ok := os.LookupEnv(v.Name)
	return value, ok, nil
}

// Validate requires an environment variable name.
func (v *EnvironmentValue) Validate() error {
	if v.Name == "" {
		return errors.New("environment value requires a variable name")
	}
	return nil
}

// References returns nil; environment values never reference other variables.
func (v *EnvironmentValue) References() []string {
	return nil
}
