package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/colog-labs/colog/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "colog")
	assert.Contains(t, out, "translate")
	assert.Contains(t, out, "prove")
}

func TestVersionThroughRoot(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "colog v")
}

func TestTranslateEndToEnd(t *testing.T) {
	project := testutil.SetupTestProject(t)
	chdir(t, project)

	out, err := execute(t, "translate", filepath.Join("ontologies", "space.clif"))
	require.NoError(t, err)
	assert.Contains(t, out, "fof(axiom10, axiom,")
	assert.Contains(t, out, "region(")

	out, err = execute(t, "translate", "--format", "ladr", filepath.Join("ontologies", "space.clif"))
	require.NoError(t, err)
	assert.Contains(t, out, "(all r")
	assert.Contains(t, out, "Region(")
}

func TestTranslateResolveEndToEnd(t *testing.T) {
	project := testutil.SetupTestProject(t)
	chdir(t, project)

	// colog.yaml provides the sub and base used to resolve imports.
	out, err := execute(t, "translate", "--resolve", filepath.Join("ontologies", "root.clif"))
	require.NoError(t, err)
	assert.Contains(t, out, "region(")
	assert.Contains(t, out, "timepoint(")
	assert.Contains(t, out, "occupies(")
}

func TestCheckEndToEnd(t *testing.T) {
	project := testutil.SetupTestProject(t)
	chdir(t, project)

	out, err := execute(t, "check", filepath.Join("ontologies", "root.clif"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok (1 axioms, 2 imports)")
}

func TestImportsEndToEnd(t *testing.T) {
	project := testutil.SetupTestProject(t)
	chdir(t, project)

	out, err := execute(t, "imports", filepath.Join("ontologies", "root.clif"))
	require.NoError(t, err)
	assert.Contains(t, out, "root.clif")
	assert.Contains(t, out, "space.clif")
	assert.Contains(t, out, "time.clif")
}

func TestUnknownFormatFails(t *testing.T) {
	project := testutil.SetupTestProject(t)
	chdir(t, project)

	_, err := execute(t, "translate", "--format", "smtlib", filepath.Join("ontologies", "space.clif"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
