package ontology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colog-labs/colog/internal/clif"
	"github.com/colog-labs/colog/internal/logical"
	"github.com/colog-labs/colog/internal/testutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T, base string) *Loader {
	return NewLoader(logical.NewFactory(), &Resolver{Sub: "http://example.org/onto", Base: base}, testutil.NewTestLogger(t))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "time.clif", `(cl-comment 'interval ontology')
(cl-imports http://example.org/onto/space.clif)
(forall (x) (Interval x))
(forall (x y) (if (Before x y) (Interval x)))`)

	onto, err := newTestLoader(t, dir).LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, onto)

	assert.Equal(t, "time", onto.Name)
	assert.Equal(t, []string{"http://example.org/onto/space.clif"}, onto.Imports)
	require.Len(t, onto.Axioms, 2)
	assert.Equal(t, "∀(x)[Interval(x)]", onto.Axioms[0].String())
	assert.Equal(t, "∀(x,y)[(~Before(x,y) | Interval(x))]", onto.Axioms[1].String())
}

func TestLoadFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.clif", "")

	onto, err := newTestLoader(t, dir).LoadFile(path)
	assert.NoError(t, err)
	assert.Nil(t, onto)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := newTestLoader(t, t.TempDir()).LoadFile("/no/such/file.clif")
	assert.Error(t, err)
}

func TestLoadFileGrammarError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.clif", "(forall (x) (and (A x)")

	onto, err := newTestLoader(t, dir).LoadFile(path)
	assert.Nil(t, onto)

	var gerr *clif.GrammarError
	require.ErrorAs(t, err, &gerr)
}

func TestResolver(t *testing.T) {
	r := &Resolver{Sub: "http://example.org/onto", Base: "/data/colore"}
	assert.Equal(t,
		filepath.Clean("/data/colore/time/time.clif"),
		r.Resolve("http://example.org/onto/time/time.clif"))
	assert.Equal(t,
		filepath.Clean("/data/colore/other.clif"),
		r.Resolve("other.clif"))
}

func TestLoadImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "space.clif", "(forall (x) (Region x))")
	writeFile(t, dir, "time.clif", `(cl-imports http://example.org/onto/space.clif)
(forall (x) (Interval x))`)
	root := writeFile(t, dir, "root.clif", `(cl-imports http://example.org/onto/time.clif)
(cl-imports http://example.org/onto/space.clif)
(forall (x) (Thing x))`)

	loader := newTestLoader(t, dir)
	onto, err := loader.LoadFile(root)
	require.NoError(t, err)

	graph, err := loader.LoadImports(onto)
	require.NoError(t, err)
	assert.Equal(t, 3, graph.Len())

	order, err := graph.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 3)
	// space has no imports and must precede time, which precedes root.
	names := make([]string, len(order))
	for i, o := range order {
		names[i] = o.Name
	}
	assert.Equal(t, []string{"space", "time", "root"}, names)

	levels, err := graph.Levels()
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, []string{filepath.Join(dir, "space.clif")}, levels[0])
}

func TestLoadImportsSharedFactoryIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.clif", "(A x)")
	root := writeFile(t, dir, "r.clif", `(cl-imports http://example.org/onto/a.clif)
(R x)`)

	loader := newTestLoader(t, dir)
	onto, err := loader.LoadFile(root)
	require.NoError(t, err)
	graph, err := loader.LoadImports(onto)
	require.NoError(t, err)

	seen := map[int64]bool{}
	for _, path := range graph.Paths() {
		o, _ := graph.Get(path)
		require.NotNil(t, o)
		for _, a := range o.Axioms {
			assert.False(t, seen[a.ID], "duplicate axiom id %d", a.ID)
			seen[a.ID] = true
		}
	}
}

func TestImportGraphCycle(t *testing.T) {
	g := NewImportGraph()
	g.AddNode("a", &Ontology{Name: "a", Path: "a"})
	g.AddNode("b", &Ontology{Name: "b", Path: "b"})
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	cyclic, cycle := g.HasCycle()
	assert.True(t, cyclic)
	assert.NotEmpty(t, cycle)

	_, err := g.TopologicalOrder()
	assert.Error(t, err)
	_, err = g.Levels()
	assert.Error(t, err)
}

func TestImportGraphSelfEdge(t *testing.T) {
	g := NewImportGraph()
	g.AddNode("a", nil)
	assert.Error(t, g.AddEdge("a", "a"))
}

func TestOntologyFFPCNF(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.clif", "(forall (x y z) (or (A x) (and (B y) (C z))))")

	onto, err := newTestLoader(t, dir).LoadFile(path)
	require.NoError(t, err)

	normalized := onto.FFPCNF()
	require.Len(t, normalized, 1)
	assert.Equal(t, "∀(z,y,x)[((A(z) | B(y)) & (A(z) | C(x)))]", normalized[0].String())
}
