//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/better-auth-ui/registry/internal/catalog"
	"github.com/better-auth-ui/registry/internal/config"
	"github.com/better-auth-ui/registry/internal/deps"
	"github.com/better-auth-ui/registry/internal/registry"
)

// testEnv holds the paths of an isolated project.
type testEnv struct {
	ProjectDir  string
	SrcDir      string
	RegistryDir string
	CatalogPath string
}

// setupTestEnv creates a project directory with a published catalog and
// clears REGISTRY_* overrides so the defaults apply.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	for _, key := range []string{"REGISTRY_SRC_DIR", "REGISTRY_REGISTRY_DIR", "REGISTRY_CATALOG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	env := &testEnv{
		ProjectDir:  dir,
		SrcDir:      filepath.Join(dir, "src"),
		RegistryDir: filepath.Join(dir, "registry"),
		CatalogPath: filepath.Join(dir, "registry.json"),
	}

	writeFile(t, env.CatalogPath, `{
  "$schema": "https://ui.shadcn.com/schema/registry.json",
  "name": "better-auth-ui",
  "homepage": "https://better-auth-ui.com",
  "items": [
    {
      "name": "sign-in-form",
      "type": "registry:component",
      "title": "Sign In Form",
      "description": "Hand written description",
      "files": [
        {
          "path": "registry/components/sign-in-form.tsx",
          "type": "registry:component"
        }
      ],
      "dependencies": ["react-hook-form"]
    }
  ]
}`)
	return env
}

// setupSources writes a representative source tree.
func setupSources(t *testing.T, srcDir string) {
	t.Helper()

	writeFile(t, filepath.Join(srcDir, "components/auth/sign-in-form.tsx"),
		"import { useForm } from 'react-hook-form'\nexport function SignInForm() {}\n")
	writeFile(t, filepath.Join(srcDir, "components/auth/sign-up-form.tsx"), `import { useForm } from "react-hook-form"
import { zodResolver } from "@hookform/resolvers/zod"
import * as z from "zod"
import { Loader2 } from "lucide-react"
import { cn } from "../../lib/utils"
export function SignUpForm() { return cn("grid") }
`)
	writeFile(t, filepath.Join(srcDir, "components/ui/button.tsx"), `import { Slot } from "@radix-ui/react-slot"
import { cva } from "class-variance-authority"
export const buttonVariants = cva("inline-flex")
`)
	writeFile(t, filepath.Join(srcDir, "components/user-avatar/index.tsx"), "export function UserAvatar() {}\n")
	writeFile(t, filepath.Join(srcDir, "hooks/use-auth-data.ts"), "import { useSession } from 'better-auth/react'\n")
	writeFile(t, filepath.Join(srcDir, "lib/utils.ts"), `import { clsx } from "clsx"
import { twMerge } from "tailwind-merge"
`)
	writeFile(t, filepath.Join(srcDir, "types/auth-client.ts"), "export type AuthClient = {}\n")
	writeFile(t, filepath.Join(srcDir, "components/README.md"), "# not a source file\n")
}

// build resolves configuration from the project directory and runs one build.
func build(t *testing.T, env *testEnv) *registry.Result {
	t.Helper()

	cfg, err := config.Load(env.ProjectDir)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	var out strings.Builder
	b := registry.NewBuilder(registry.Layout{
		ProjectRoot: cfg.ProjectRoot,
		SrcDir:      cfg.SrcDir,
		RegistryDir: cfg.RegistryDir,
		CatalogPath: cfg.CatalogPath,
		Roots:       cfg.Roots,
		Extensions:  cfg.Extensions,
	},
		registry.WithExtractor(deps.NewPatternExtractor(cfg.ExtraDependencies...)),
		registry.WithVersions(cfg.DependencyVersions),
		registry.WithOutput(&out, &out),
	)
	res, err := b.Run()
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}
	return res
}

// loadCatalog reads the catalog and indexes items by name.
func loadCatalog(t *testing.T, path string) (*catalog.Document, map[string]catalog.Item) {
	t.Helper()
	doc, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	byName := make(map[string]catalog.Item, len(doc.Items))
	for _, it := range doc.Items {
		byName[it.Name] = it
	}
	return doc, byName
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// readFile returns the file's content.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
