package vars

import (
	"errors"
	"fmt"
)

// ErrNoRules is returned by Refresh when no condition rules are attached.
// Attaching rules before the first refresh is a setup obligation of the
// caller, so hitting this is a misconfiguration, not a runtime condition.
var ErrNoRules = errors.New("no condition rules attached to the variable engine")

// ErrCyclic is returned by Refresh when the iteration budget is exhausted
// without reaching a fixed point, which usually means the dynamic variables
// depend on each other cyclically.
var ErrCyclic = errors.New("dynamic variable refresh did not converge")

// EvalError reports a structural fault raised while evaluating a single
// definition. It aborts the refresh that encountered it.
type EvalError struct {
	Name string
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("failed to refresh dynamic variable (%s): %v", e.Name, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
