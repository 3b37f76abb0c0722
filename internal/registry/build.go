package registry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/better-auth-ui/registry/internal/catalog"
	"github.com/better-auth-ui/registry/internal/deps"
)

// Result summarizes a build.
type Result struct {
	Processed int // files scanned
	Added     int
	Skipped   int // name already in the catalog
	Failed    int // read or copy failures

	AddedNames    []string
	Total         int            // items in the written catalog
	ByType        map[string]int // items per type in the written catalog
	RegistryFiles int            // files present in the output tree
}

// Builder runs registry builds for one layout.
type Builder struct {
	layout    Layout
	extractor deps.Extractor
	synth     Synthesizer
	out       io.Writer
	errOut    io.Writer
}

// Option customizes a Builder.
type Option func(*Builder)

// WithExtractor replaces the pattern-based dependency extractor.
func WithExtractor(e deps.Extractor) Option {
	return func(b *Builder) {
		b.extractor = e
	}
}

// WithOutput sets where progress lines and per-file errors are written.
func WithOutput(out, errOut io.Writer) Option {
	return func(b *Builder) {
		b.out = out
		b.errOut = errOut
	}
}

// WithProduct sets the product name used in item descriptions.
func WithProduct(name string) Option {
	return func(b *Builder) {
		b.synth.Product = name
	}
}

// WithVersions pins external dependencies to version constraints.
func WithVersions(versions map[string]string) Option {
	return func(b *Builder) {
		b.synth.Versions = versions
	}
}

// NewBuilder returns a Builder for layout.
func NewBuilder(layout Layout, opts ...Option) *Builder {
	b := &Builder{
		layout:    layout,
		extractor: deps.NewPatternExtractor(),
		synth:     Synthesizer{Layout: layout},
		out:       io.Discard,
		errOut:    io.Discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run performs one full build: it loads the catalog, adds an item for every
// scanned file whose name is not yet cataloged, copies those files into the
// output tree, and writes the sorted catalog back.
//
// Per-file failures are reported and skipped. Scan errors and catalog
// load or write errors abort the build.
func (b *Builder) Run() (*Result, error) {
	unlock, err := catalog.Lock(b.layout.CatalogPath)
	if err != nil {
		return nil, err
	}
	defer unlock()

	fmt.Fprintln(b.out, "🚀 Building complete registry...")

	doc, err := catalog.Load(b.layout.CatalogPath)
	if err != nil {
		return nil, err
	}

	files, err := ScanSources(b.layout.SrcDir, b.layout.Roots, b.layout.Extensions)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(b.out, "📁 Found %d files to process\n", len(files))

	res := &Result{}
	known := doc.Names()
	var added []catalog.Item

	for _, f := range files {
		res.Processed++
		c := Classify(f.RelPath)
		name := Identifier(f.RelPath)
		fmt.Fprintf(b.out, "📝 Processing: %s (%s)\n", name, c)

		if known[name] {
			res.Skipped++
			fmt.Fprintf(b.out, "⏭️  Skipping %s - already exists\n", name)
			continue
		}

		item, err := b.add(f, c)
		if err != nil {
			res.Failed++
			fmt.Fprintf(b.errOut, "❌ Error processing %s (%s): %v\n", name, f.RelPath, err)
			continue
		}

		known[name] = true
		added = append(added, item)
		res.AddedNames = append(res.AddedNames, name)
		fmt.Fprintf(b.out, "✅ Added %s\n", name)
	}

	doc.Items = append(doc.Items, added...)
	doc.Sort()

	if err := catalog.Save(b.layout.CatalogPath, doc); err != nil {
		return nil, err
	}

	res.Added = len(added)
	res.Total = len(doc.Items)
	res.ByType = doc.CountByType()
	if res.RegistryFiles, err = b.countOutputFiles(); err != nil {
		fmt.Fprintf(b.errOut, "⚠️  Could not count files in %s: %v\n", b.layout.RegistryDir, err)
	}

	return res, nil
}

// add reads, analyzes, and copies one file, returning its catalog item.
func (b *Builder) add(f SourceFile, c Category) (catalog.Item, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return catalog.Item{}, &FileError{Path: f.Path, Op: "read", Err: err}
	}

	item := b.synth.Synthesize(f, c, b.extractor.Extract(content))

	dst := b.layout.OutputPath(c, filepath.Base(f.Path))
	if err := copySource(f.Path, content, dst); err != nil {
		return catalog.Item{}, &FileError{Path: f.Path, Op: "copy", Err: err}
	}

	return item, nil
}

// countOutputFiles counts the files in the output tree.
func (b *Builder) countOutputFiles() (int, error) {
	if _, err := os.Stat(b.layout.RegistryDir); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	files, err := Scan(b.layout.RegistryDir, b.layout.Extensions)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}
