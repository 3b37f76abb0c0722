package registry

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates path (and its parents) under root with content.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

// newProject creates a project with an empty catalog and returns its layout.
func newProject(t *testing.T) Layout {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "registry.json", "{\n  \"items\": []\n}")
	return Layout{
		ProjectRoot: root,
		SrcDir:      filepath.Join(root, "src"),
		RegistryDir: filepath.Join(root, "registry"),
		CatalogPath: filepath.Join(root, "registry.json"),
		Roots:       []string{"components", "hooks", "lib", "types"},
		Extensions:  []string{".ts", ".tsx"},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
