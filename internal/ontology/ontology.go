package ontology

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/colog-labs/colog/internal/clif"
	"github.com/colog-labs/colog/internal/logical"
)

// Ontology is one parsed CLIF file: its axioms in source order plus the
// import URIs it declares. Comments are dropped during parsing.
type Ontology struct {
	Name    string
	Path    string
	Axioms  []*logical.Axiom
	Imports []string
}

// FFPCNF returns a new axiom list with every axiom normalized.
func (o *Ontology) FFPCNF() []*logical.Axiom {
	out := make([]*logical.Axiom, len(o.Axioms))
	for i, a := range o.Axioms {
		out[i] = a.FFPCNF()
	}
	return out
}

// Resolver maps import URIs onto local file paths by substituting a URI
// prefix with a base directory.
type Resolver struct {
	// Sub is the URI prefix found in cl-imports declarations.
	Sub string
	// Base is the local directory that replaces Sub.
	Base string
}

// Resolve returns the local path for an import URI. A URI that does not
// carry the Sub prefix resolves relative to Base as-is.
func (r *Resolver) Resolve(uri string) string {
	if r.Sub != "" && strings.HasPrefix(uri, r.Sub) {
		return filepath.Clean(filepath.Join(r.Base, strings.TrimPrefix(uri, r.Sub)))
	}
	return filepath.Clean(filepath.Join(r.Base, uri))
}

// Loader parses ontology files and resolves their import closure. All
// axioms produced by one loader share the factory's counters, so ids and
// fresh names stay unique across the whole closure.
type Loader struct {
	factory  *logical.Factory
	resolver *Resolver
	logger   *slog.Logger
}

// NewLoader creates a loader. A nil logger discards log output.
func NewLoader(factory *logical.Factory, resolver *Resolver, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if resolver == nil {
		resolver = &Resolver{}
	}
	return &Loader{factory: factory, resolver: resolver, logger: logger}
}

// LoadFile parses a single CLIF file. An empty file yields (nil, nil):
// no ontology and no error.
func (l *Loader) LoadFile(path string) (*Ontology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ontology: %w", err)
	}
	if len(data) == 0 {
		l.logger.Warn("skipping empty ontology file", "path", path)
		return nil, nil
	}

	result, err := clif.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if result == nil {
		return nil, nil
	}
	for _, diag := range result.Diagnostics {
		l.logger.Warn("lexical diagnostic", "path", path, "error", diag.Error())
	}

	onto := &Ontology{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:    filepath.Clean(path),
		Imports: result.Imports,
	}
	for _, sentence := range result.Sentences {
		onto.Axioms = append(onto.Axioms, l.factory.NewAxiom(sentence))
	}
	l.logger.Debug("loaded ontology",
		"path", onto.Path, "axioms", len(onto.Axioms), "imports", len(onto.Imports))
	return onto, nil
}

// LoadImports loads the transitive import closure of root and returns the
// resulting graph, root included. Each file is parsed at most once; a
// GrammarError in any file aborts the whole load. Cyclic imports are
// tolerated during loading (each node parses once) and surface when the
// graph is ordered.
func (l *Loader) LoadImports(root *Ontology) (*ImportGraph, error) {
	graph := NewImportGraph()
	graph.AddNode(root.Path, root)

	queue := []*Ontology{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, uri := range current.Imports {
			path := l.resolver.Resolve(uri)
			if _, seen := graph.Get(path); !seen {
				imported, err := l.LoadFile(path)
				if err != nil {
					return nil, fmt.Errorf("resolving import %s: %w", uri, err)
				}
				graph.AddNode(path, imported)
				if imported != nil {
					queue = append(queue, imported)
				}
			}
			if err := graph.AddEdge(path, current.Path); err != nil {
				return nil, err
			}
		}
	}
	return graph, nil
}
