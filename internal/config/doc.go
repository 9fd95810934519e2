// Package config defines the format-agnostic model of a variable definition
// set and the Loader interface implemented by format-specific loaders.
package config
