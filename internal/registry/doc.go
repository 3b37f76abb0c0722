// Package registry builds the component registry from a source tree. It
// scans the source roots, classifies each file into a category, extracts its
// dependencies, derives catalog metadata, copies new files into the
// category's output directory, and merges the new items into the catalog.
//
// The merge is additive: an item whose name is already in the catalog is
// skipped, so repeated builds over an unchanged tree leave the catalog and
// the output tree untouched.
package registry
