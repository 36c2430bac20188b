// Package ontology models parsed CLIF ontologies, resolves their import
// closure to local files, and tracks the import relation as a directed
// acyclic graph.
package ontology

import (
	"fmt"
	"sort"
)

// ImportGraph is the directed graph of the import relation. An edge runs
// from an imported ontology to its importer, so topological order lists
// dependencies before the files that need them.
type ImportGraph struct {
	nodes     map[string]*Ontology
	importers map[string][]string // imported -> importers
	imports   map[string][]string // importer -> imported
}

// NewImportGraph creates an empty graph.
func NewImportGraph() *ImportGraph {
	return &ImportGraph{
		nodes:     make(map[string]*Ontology),
		importers: make(map[string][]string),
		imports:   make(map[string][]string),
	}
}

// AddNode registers an ontology under its path. Re-adding an existing
// path updates the stored ontology.
func (g *ImportGraph) AddNode(path string, onto *Ontology) {
	if _, exists := g.nodes[path]; !exists {
		g.nodes[path] = onto
		g.importers[path] = []string{}
		g.imports[path] = []string{}
		return
	}
	if onto != nil {
		g.nodes[path] = onto
	}
}

// AddEdge records that importer imports imported. Both paths must be
// registered; self-imports are rejected.
func (g *ImportGraph) AddEdge(imported, importer string) error {
	if _, exists := g.nodes[imported]; !exists {
		return fmt.Errorf("unknown ontology %q", imported)
	}
	if _, exists := g.nodes[importer]; !exists {
		return fmt.Errorf("unknown ontology %q", importer)
	}
	if imported == importer {
		return fmt.Errorf("ontology %q imports itself", imported)
	}

	if !containsPath(g.importers[imported], importer) {
		g.importers[imported] = append(g.importers[imported], importer)
	}
	if !containsPath(g.imports[importer], imported) {
		g.imports[importer] = append(g.imports[importer], imported)
	}
	return nil
}

// Get returns the ontology stored under path.
func (g *ImportGraph) Get(path string) (*Ontology, bool) {
	onto, exists := g.nodes[path]
	return onto, exists
}

// Paths returns every registered path in sorted order.
func (g *ImportGraph) Paths() []string {
	paths := make([]string, 0, len(g.nodes))
	for path := range g.nodes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of registered ontologies.
func (g *ImportGraph) Len() int { return len(g.nodes) }

// HasCycle reports whether the import relation contains a cycle, along
// with the offending path sequence.
func (g *ImportGraph) HasCycle() (bool, []string) {
	visited := make(map[string]bool)
	inStack := make(map[string]bool)
	cameFrom := make(map[string]string)

	var cycle []string

	var dfs func(path string) bool
	dfs = func(path string) bool {
		visited[path] = true
		inStack[path] = true

		for _, next := range g.importers[path] {
			if !visited[next] {
				cameFrom[next] = path
				if dfs(next) {
					return true
				}
			} else if inStack[next] {
				cycle = []string{next}
				for curr := path; curr != next; curr = cameFrom[curr] {
					cycle = append([]string{curr}, cycle...)
				}
				cycle = append([]string{next}, cycle...)
				return true
			}
		}

		inStack[path] = false
		return false
	}

	for path := range g.nodes {
		if !visited[path] {
			if dfs(path) {
				return true, cycle
			}
		}
	}
	return false, nil
}

// TopologicalOrder returns the ontologies with every import listed before
// its importers. Fails if the import relation is cyclic.
func (g *ImportGraph) TopologicalOrder() ([]*Ontology, error) {
	if cyclic, cycle := g.HasCycle(); cyclic {
		return nil, fmt.Errorf("import cycle detected: %v", cycle)
	}

	visited := make(map[string]bool)
	var result []*Ontology

	var visit func(path string)
	visit = func(path string) {
		if visited[path] {
			return
		}
		visited[path] = true
		for _, dep := range g.imports[path] {
			visit(dep)
		}
		result = append(result, g.nodes[path])
	}

	for _, path := range g.Paths() {
		visit(path)
	}
	return result, nil
}

// Levels groups paths by import depth: level 0 holds ontologies with no
// imports, level N ontologies whose deepest import sits at level N-1.
func (g *ImportGraph) Levels() ([][]string, error) {
	if cyclic, cycle := g.HasCycle(); cyclic {
		return nil, fmt.Errorf("import cycle detected: %v", cycle)
	}

	assigned := make(map[string]int)

	var level func(path string) int
	level = func(path string) int {
		if lvl, ok := assigned[path]; ok {
			return lvl
		}
		deps := g.imports[path]
		if len(deps) == 0 {
			assigned[path] = 0
			return 0
		}
		deepest := 0
		for _, dep := range deps {
			if l := level(dep); l > deepest {
				deepest = l
			}
		}
		assigned[path] = deepest + 1
		return deepest + 1
	}

	maxLevel := 0
	for path := range g.nodes {
		if l := level(path); l > maxLevel {
			maxLevel = l
		}
	}

	levels := make([][]string, maxLevel+1)
	for path, lvl := range assigned {
		levels[lvl] = append(levels[lvl], path)
	}
	for i := range levels {
		sort.Strings(levels[i])
	}
	return levels, nil
}

func containsPath(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}
