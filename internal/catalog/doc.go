// Package catalog reads and writes the persisted registry catalog
// (registry.json). A Document keeps every top-level member of the file in
// its original order and every loaded item as the exact JSON it was read
// from, so rewriting the document never alters published entries.
//
// Documents are validated against an embedded JSON Schema when loaded and
// before they are written. Writes go to a temporary file that is renamed
// over the catalog, and Lock guards a catalog against concurrent builds.
package catalog
