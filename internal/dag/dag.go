package dag

import (
	"github.com/vk/varforge/internal/vars"
)

// Graph is a directed dependency graph over dynamic variable definitions.
// An edge from one definition to another records that the first's raw
// expression references the second's name. Vertices are definitions, not
// names: a name with several competing definitions contributes several
// vertices, and a reference to that name fans out to all of them.
type Graph struct {
	// order holds all vertices in registration order.
	order []*vars.Definition
	// edges maps a definition to the definitions it depends on.
	edges map[*vars.Definition][]*vars.Definition
	// byName groups the vertices by the variable name they produce.
	byName map[string][]*vars.Definition
}

// Build constructs the graph for the given definitions. It is rebuilt fresh
// at each serialization event and never persisted.
func Build(defs []*vars.Definition) *Graph {
	g := &Graph{
		edges:  make(map[*vars.Definition][]*vars.Definition),
		byName: make(map[string][]*vars.Definition),
	}
	for _, def := range defs {
		g.addVertex(def)
	}
	for _, def := range defs {
		for _, name := range def.UnresolvedNames() {
			for _, producer := range g.byName[name] {
				g.addEdge(def, producer)
			}
		}
	}
	return g
}

// addVertex registers a definition as a graph vertex. Adding the same
// definition twice is a no-op.
func (g *Graph) addVertex(def *vars.Definition) {
	if _, ok := g.edges[def]; ok {
		return
	}
	g.order = append(g.order, def)
	g.edges[def] = nil
	g.byName[def.Name] = append(g.byName[def.Name], def)
}

// addEdge records that from depends on to. Self-references are dropped; a
// definition consuming its own previous value needs no ordering help.
func (g *Graph) addEdge(from, to *vars.Definition) {
	if from == to {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.order)
}
