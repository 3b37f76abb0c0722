package registry

import (
	"path"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/better-auth-ui/registry/internal/catalog"
	"github.com/better-auth-ui/registry/internal/deps"
)

const indexName = "index"

// Identifier returns the item name for a source path: the file name without
// its extension, or the parent directory name for index files.
func Identifier(relPath string) string {
	p := filepath.ToSlash(relPath)
	base := path.Base(p)
	name := strings.TrimSuffix(base, path.Ext(base))
	if name != indexName {
		return name
	}
	if dir := path.Dir(p); dir != "." && dir != "/" {
		return path.Base(dir)
	}
	return name
}

// Title turns a hyphenated identifier into a display title:
// "forgot-password-form" → "Forgot Password Form".
func Title(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Synthesizer derives catalog items from scanned files.
type Synthesizer struct {
	Layout  Layout
	Product string // product name used in descriptions

	// Versions pins external dependencies; a pinned name is written as
	// "name@constraint".
	Versions map[string]string
}

// Description returns the item description for a title.
func (s Synthesizer) Description(title string) string {
	return title + " component for " + s.Product
}

// Synthesize builds the candidate catalog item for a file.
func (s Synthesizer) Synthesize(file SourceFile, c Category, d deps.Dependencies) catalog.Item {
	name := Identifier(file.RelPath)
	title := Title(name)

	item := catalog.Item{
		Name:        name,
		Type:        c.String(),
		Title:       title,
		Description: s.Description(title),
		Files: []catalog.File{{
			Path: s.filePath(c, file),
			Type: c.String(),
		}},
	}

	if len(d.External) > 0 {
		item.Dependencies = make([]string, 0, len(d.External))
		for _, dep := range d.External {
			if v, ok := s.Versions[dep]; ok && v != "" {
				dep += "@" + v
			}
			item.Dependencies = append(item.Dependencies, dep)
		}
	}
	if len(d.Internal) > 0 {
		item.RegistryDependencies = append([]string(nil), d.Internal...)
	}

	return item
}

// filePath returns the output path recorded in the catalog, relative to the
// project root.
func (s Synthesizer) filePath(c Category, file SourceFile) string {
	out := s.Layout.OutputPath(c, filepath.Base(file.Path))
	rel, err := filepath.Rel(s.Layout.ProjectRoot, out)
	if err != nil {
		return filepath.ToSlash(out)
	}
	return filepath.ToSlash(rel)
}
