// Package rules implements the condition oracle consulted by the variable
// engine. Conditions are named boolean expressions compiled with
// expr-lang/expr and evaluated against a snapshot of the variable store.
package rules
