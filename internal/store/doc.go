// Package store implements the variable store: a process-scoped, thread-safe
// mapping of variable names to string values with typed accessors. It is pure
// state; all resolution policy lives in the vars package.
package store
