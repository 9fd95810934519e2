package dag

import (
	"fmt"

	"github.com/vk/varforge/internal/vars"
)

// Serialize returns the definitions ordered so that producers come before
// the definitions referencing them, via depth-first post-order. Back edges
// are skipped, so a cyclic graph still yields a complete, best-effort
// ordering: within a cycle the relative order degrades to registration
// order, which the runtime loop tolerates.
func (g *Graph) Serialize() []*vars.Definition {
	ordered := make([]*vars.Definition, 0, len(g.order))
	visited := make(map[*vars.Definition]bool, len(g.order))

	var visit func(def *vars.Definition)
	visit = func(def *vars.Definition) {
		visited[def] = true
		for _, dep := range g.edges[def] {
			if !visited[dep] {
				visit(dep)
			}
		}
		ordered = append(ordered, def)
	}

	for _, def := range g.order {
		if !visited[def] {
			visit(def)
		}
	}
	return ordered
}

// DetectCycles checks for circular references among the definitions using
// DFS. A cycle is not an error for the runtime loop, which has its own
// iteration bound; callers use this to warn early at build time.
func (g *Graph) DetectCycles() error {
	visiting := make(map[*vars.Definition]bool)
	visited := make(map[*vars.Definition]bool)

	var visit func(def *vars.Definition) error
	visit = func(def *vars.Definition) error {
		visiting[def] = true
		for _, dep := range g.edges[def] {
			if visiting[dep] {
				return fmt.Errorf("cycle detected involving variable %q", dep.Name)
			}
			if !visited[dep] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		delete(visiting, def)
		visited[def] = true
		return nil
	}

	for _, def := range g.order {
		if !visited[def] {
			if err := visit(def); err != nil {
				return err
			}
		}
	}
	return nil
}
