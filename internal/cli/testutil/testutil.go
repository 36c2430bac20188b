// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestProject creates a temporary project with a small ontology and
// its import closure, returning the project directory. The root ontology
// imports two others through the http://example.org/ prefix.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	ontoDir := filepath.Join(tmpDir, "ontologies")
	if err := os.MkdirAll(ontoDir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", ontoDir, err)
	}

	files := map[string]string{
		"root.clif": `(cl-imports http://example.org/ontologies/space.clif)
(cl-imports http://example.org/ontologies/time.clif)
(forall (o) (if (Object o) (exists (r) (occupies o r))))`,
		"space.clif": `(forall (r) (if (Region r) (not (TimePoint r))))`,
		"time.clif":  `(forall (t) (if (TimePoint t) (before t t)))`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(ontoDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	config := "sub: http://example.org/\nbase: " + tmpDir + "/\nformat: tptp\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "colog.yaml"), []byte(config), 0o644); err != nil {
		t.Fatalf("failed to create colog.yaml: %v", err)
	}

	return tmpDir
}

// WriteOntology writes a single CLIF file into dir and returns its path.
func WriteOntology(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}
