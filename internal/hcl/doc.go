// Package hcl implements the HCL-specific config.Loader. Definition files
// declare `variable` and `condition` blocks; literal ${name} placeholders
// are written $${name} to keep them out of HCL's own template syntax.
package hcl
