// Package subst implements placeholder substitution over a variable store.
// It recognizes ${name} and $name tokens, replaces the ones whose name is
// currently set, and reports which names a piece of text still references.
package subst
