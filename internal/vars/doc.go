// Package vars implements the dynamic variable resolution engine: named,
// conditionally-active definitions whose string values are recomputed from
// expressions referencing other variables, converged to a fixed point by an
// iterative refresh, with support for check-once freezing and caller-imposed
// blocking of individual names.
package vars
