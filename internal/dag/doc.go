// Package dag builds the build-time dependency graph over dynamic variable
// definitions and produces a linear ordering that places producers before
// consumers. The ordering only speeds up first-pass convergence at runtime;
// the refresh loop is order-tolerant, so cycles here are reported but never
// fatal.
package dag
