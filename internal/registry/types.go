package registry

import "path/filepath"

// Category classifies a source file. It decides both the serialized item
// type and the output directory.
type Category int

const (
	Component Category = iota
	Hook
	UIPrimitive
	Library
)

var categoryTags = map[Category]string{
	Component:   "registry:component",
	Hook:        "registry:hook",
	UIPrimitive: "registry:ui",
	Library:     "registry:lib",
}

var categoryDirs = map[Category]string{
	Component:   "components",
	Hook:        "hooks",
	UIPrimitive: "ui",
	Library:     "lib",
}

// String returns the serialized type tag, e.g. "registry:hook".
func (c Category) String() string {
	if tag, ok := categoryTags[c]; ok {
		return tag
	}
	return categoryTags[Component]
}

// Dir returns the output directory name under the registry directory.
func (c Category) Dir() string {
	if dir, ok := categoryDirs[c]; ok {
		return dir
	}
	return categoryDirs[Component]
}

// ParseCategory maps a type tag back to its Category.
func ParseCategory(tag string) (Category, bool) {
	for c, t := range categoryTags {
		if t == tag {
			return c, true
		}
	}
	return Component, false
}

// SourceFile is a file found by the scanner.
type SourceFile struct {
	Path    string // absolute path
	RelPath string // slash-separated path relative to the source directory
	Ext     string // e.g. ".tsx"
}

// Layout locates the inputs and outputs of a build. All paths are absolute.
type Layout struct {
	ProjectRoot string   // item file paths are written relative to this
	SrcDir      string   // directory holding the source roots
	RegistryDir string   // output tree for copied files
	CatalogPath string   // registry.json
	Roots       []string // source roots under SrcDir, scanned in order
	Extensions  []string // file extensions to collect
}

// OutputPath returns where a file named fileName of category c is copied.
func (l Layout) OutputPath(c Category, fileName string) string {
	return filepath.Join(l.RegistryDir, c.Dir(), fileName)
}
